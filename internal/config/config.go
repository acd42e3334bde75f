package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/flarebyte/builder/internal/basics"
)

//go:embed schema.cue
var schemaSource []byte

// fieldKinds lists every field a config may set, with the kind it must have.
var fieldKinds = []struct {
	path string
	kind cue.Kind
}{
	{"configVersion", cue.StringKind},
	{"greet.name", cue.StringKind},
	{"add.a", cue.IntKind},
	{"add.b", cue.IntKind},
	{"data.values", cue.ListKind},
	{"data.aggregate", cue.StringKind},
	{"reduce.inline", cue.StringKind},
	{"files.enabled", cue.BoolKind},
	{"files.root", cue.StringKind},
	{"files.noGitignore", cue.BoolKind},
	{"output.format", cue.StringKind},
}

// Output formats accepted by output.format.
var OutputFormats = []string{"text", "json", "yaml"}

// Settings is the resolved configuration of a builder run.
type Settings struct {
	ConfigVersion string
	Greet         Greet
	Add           Add
	Data          Data
	Reduce        Reduce
	Files         Files
	Output        Output
}

// Greet configures the greeting step.
type Greet struct {
	Name string
}

// Add configures the addition step.
type Add struct {
	A int
	B int
}

// Data configures the process-data step.
type Data struct {
	Values    []int
	Aggregate string
}

// Reduce holds an optional Lua reducer replacing the aggregate.
type Reduce struct {
	Inline string
}

// Files configures the optional list-files step.
type Files struct {
	Enabled     bool
	Root        string
	NoGitignore bool
}

// Output selects how the report is rendered.
type Output struct {
	Format string
}

// Defaults returns the settings described by the embedded schema alone.
func Defaults() (Settings, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(fmt.Sprintf("configVersion: %q", CurrentConfigVersion))
	return resolve(ctx, v)
}

// Load reads and validates the .cue file at path, filling unset fields from
// the built-in schema defaults. An empty path yields Defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Defaults()
	}
	ctx := cuecontext.New()
	v, err := compileCUE(ctx, path)
	if err != nil {
		return Settings{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}
	if err := checkFields(v); err != nil {
		return Settings{}, err
	}
	return resolve(ctx, v)
}

// LoadAndValidate reports whether the config at path is usable.
func LoadAndValidate(path string) error {
	_, err := Load(path)
	return err
}

func resolve(ctx *cue.Context, v cue.Value) (Settings, error) {
	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Settings{}, fmt.Errorf("invalid schema: %v", err)
	}
	u := schema.LookupPath(cue.ParsePath("#Settings")).Unify(v)
	if err := u.Err(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %v", err)
	}

	var s Settings
	if err := decodeField(u, "configVersion", &s.ConfigVersion); err != nil {
		return Settings{}, err
	}
	if !IsSupportedConfigVersion(s.ConfigVersion) {
		return Settings{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", s.ConfigVersion, SupportedConfigVersionsCSV())
	}
	fields := []struct {
		path string
		dst  any
	}{
		{"greet.name", &s.Greet.Name},
		{"add.a", &s.Add.A},
		{"add.b", &s.Add.B},
		{"data.values", &s.Data.Values},
		{"data.aggregate", &s.Data.Aggregate},
		{"reduce.inline", &s.Reduce.Inline},
		{"files.enabled", &s.Files.Enabled},
		{"files.root", &s.Files.Root},
		{"files.noGitignore", &s.Files.NoGitignore},
		{"output.format", &s.Output.Format},
	}
	for _, f := range fields {
		if err := decodeField(u, f.path, f.dst); err != nil {
			return Settings{}, err
		}
	}
	if s.Data.Values == nil {
		s.Data.Values = []int{}
	}
	if !basics.IsAggregateKind(s.Data.Aggregate) {
		return Settings{}, fmt.Errorf("invalid value for data.aggregate: %q (supported: %s)", s.Data.Aggregate, basics.AggregateKindsCSV())
	}
	if !IsOutputFormat(s.Output.Format) {
		return Settings{}, fmt.Errorf("invalid value for output.format: %q (supported: text, json, yaml)", s.Output.Format)
	}
	return s, nil
}

// IsOutputFormat reports whether f is a known output format.
func IsOutputFormat(f string) bool {
	for _, o := range OutputFormats {
		if o == f {
			return true
		}
	}
	return false
}
