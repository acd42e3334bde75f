package step

import (
	"context"

	"github.com/flarebyte/builder/internal/config"
)

// LoadConfig is the step implementation for "load-config". It resolves
// meta.configPath, or the built-in defaults when unset, into meta.
func LoadConfig(ctx context.Context, in Report, deps Deps) (Report, error) {
	path := ""
	if in.Meta != nil {
		path = in.Meta.ConfigPath
	}
	s, err := config.Load(path)
	if err != nil {
		return Report{}, err
	}
	out := in
	meta := Meta{}
	if in.Meta != nil {
		meta = *in.Meta
	}
	out.Meta = &meta
	// configPath is not persisted in output.
	out.Meta.ConfigPath = ""
	out.Meta.Config = &ConfigMeta{ConfigVersion: s.ConfigVersion}
	out.Meta.Inputs = &InputsMeta{
		Name:         s.Greet.Name,
		A:            s.Add.A,
		B:            s.Add.B,
		Data:         s.Data.Values,
		Aggregate:    s.Data.Aggregate,
		ReduceInline: s.Reduce.Inline,
	}
	out.Meta.Files = &FilesMeta{Enabled: s.Files.Enabled, Root: s.Files.Root, NoGitignore: s.Files.NoGitignore}
	out.Meta.Output = &OutputMeta{Format: s.Output.Format}
	return out, nil
}

func init() { Register("load-config", LoadConfig) }
