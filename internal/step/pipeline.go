package step

import "context"

// DefaultSteps is the fixed order of the builder demo.
var DefaultSteps = []string{
	"greet",
	"add",
	"process-data",
	"working-directory",
	"echo-args",
}

// Prepared returns the step order for meta: the default steps with
// list-files inserted before echo-args when files are enabled.
func Prepared(meta *Meta) []string {
	steps := []string{"greet", "add", "process-data", "working-directory"}
	if meta != nil && meta.Files != nil && meta.Files.Enabled {
		steps = append(steps, "list-files")
	}
	return append(steps, "echo-args")
}

// AfterFunc observes the report after each step.
type AfterFunc func(name string, out Report)

// RunAll executes the named steps in order, stopping at the first error.
func RunAll(ctx context.Context, in Report, names []string, deps Deps, after AfterFunc) (Report, error) {
	out := in
	var err error
	for _, name := range names {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Report{}, err
		}
		if after != nil {
			after(name, out)
		}
	}
	return out, nil
}
