package step

import (
	"context"

	"github.com/flarebyte/builder/internal/files"
)

// Deps carries what steps need from the environment.
type Deps struct {
	Files *files.Handler
}

func (d Deps) files() *files.Handler {
	if d.Files == nil {
		return files.NewHandler()
	}
	return d.Files
}

// Runner executes a step.
type Runner func(ctx context.Context, in Report, deps Deps) (Report, error)

var registry = map[string]Runner{}

// Register adds a step runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered step by name.
func Run(ctx context.Context, name string, in Report, deps Deps) (Report, error) {
	r, ok := registry[name]
	if !ok {
		return Report{}, ErrUnknown{name: name}
	}
	return r(ctx, in, deps)
}

// Known reports whether a step is registered under name.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// ErrUnknown is returned when a step is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown step: " + e.name }
