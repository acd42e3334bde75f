// Package step implements the builder demo as a sequence of named steps
// passing a Report along.
package step

// Line is one human-readable output line produced by a step.
type Line struct {
	Step  string `json:"step"`
	Text  string `json:"text"`
	Value any    `json:"value,omitempty"`
}

// ConfigMeta holds validated config essentials.
type ConfigMeta struct {
	ConfigVersion string `json:"configVersion"`
}

// InputsMeta holds the values the computing steps work on.
type InputsMeta struct {
	Name         string `json:"name"`
	A            int    `json:"a"`
	B            int    `json:"b"`
	Data         []int  `json:"data"`
	Aggregate    string `json:"aggregate,omitempty"`
	ReduceInline string `json:"reduceInline,omitempty"`
}

// FilesMeta holds list-files options.
type FilesMeta struct {
	Enabled     bool   `json:"enabled,omitempty"`
	Root        string `json:"root,omitempty"`
	NoGitignore bool   `json:"noGitignore,omitempty"`
}

// OutputMeta selects the renderer.
type OutputMeta struct {
	Format string `json:"format,omitempty"`
}

// Meta holds optional metadata with deterministic JSON field order.
type Meta struct {
	ConfigPath string      `json:"configPath,omitempty"`
	Config     *ConfigMeta `json:"config,omitempty"`
	Inputs     *InputsMeta `json:"inputs,omitempty"`
	Files      *FilesMeta  `json:"files,omitempty"`
	Output     *OutputMeta `json:"output,omitempty"`
	Args       []string    `json:"args,omitempty"`
}

// Report is the JSON-serializable value passed between steps.
// Field order is stable to keep JSON deterministic in tests.
type Report struct {
	Lines []Line `json:"lines"`
	Meta  *Meta  `json:"meta,omitempty"`
}

// NewReport returns an empty report carrying the program arguments.
func NewReport(args []string) Report {
	r := Report{Lines: []Line{}}
	if len(args) > 0 {
		r.Meta = &Meta{Args: append([]string(nil), args...)}
	}
	return r
}

// Texts returns the text of every line, in order.
func (r Report) Texts() []string {
	out := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.Text)
	}
	return out
}

func (r Report) withLine(l Line) Report {
	out := r
	out.Lines = append(append([]Line{}, r.Lines...), l)
	return out
}

// inputs returns the configured inputs or the built-in defaults.
func inputs(meta *Meta) InputsMeta {
	if meta != nil && meta.Inputs != nil {
		return *meta.Inputs
	}
	return defaultInputs()
}
