package run

import (
	"context"

	"github.com/flarebyte/builder/internal/step"
)

// executePipeline loads the config, then runs the prepared steps.
func executePipeline(ctx context.Context, cfgPath string, args []string, tracer *traceReporter) (step.Report, error) {
	in := step.NewReport(args)
	if in.Meta == nil {
		in.Meta = &step.Meta{}
	}
	in.Meta.ConfigPath = cfgPath
	loaded, err := step.RunAll(ctx, in, []string{"load-config"}, step.Deps{}, tracer.after())
	if err != nil {
		return step.Report{}, err
	}
	return step.RunAll(ctx, loaded, step.Prepared(loaded.Meta), step.Deps{}, tracer.after())
}

// outputFormat returns the configured format, text when unset.
func outputFormat(out step.Report) string {
	if out.Meta != nil && out.Meta.Output != nil && out.Meta.Output.Format != "" {
		return out.Meta.Output.Format
	}
	return "text"
}
