package diagnose

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/flarebyte/builder/internal/step"
	"github.com/spf13/cobra"
)

func dumpStepBoundary(seq int, stepName string, suffix string, r step.Report) error {
	if flagDumpDir == "" {
		return nil
	}
	base := fmt.Sprintf("%03d_%s_%s.json", seq, stepName, suffix)
	return writeJSONFile(filepath.Join(flagDumpDir, base), r)
}

func runStepSequence(ctx context.Context, in step.Report, steps []string) (step.Report, error) {
	out := in
	for i, name := range steps {
		seq := i + 1
		if err := dumpStepBoundary(seq, name, "in", out); err != nil {
			return step.Report{}, err
		}
		next, err := step.Run(ctx, name, out, step.Deps{})
		if err != nil {
			return step.Report{}, err
		}
		if err := dumpStepBoundary(seq, name, "out", next); err != nil {
			return step.Report{}, err
		}
		out = next
	}
	return out, nil
}

func runStepsAndRender(cmd *cobra.Command, in step.Report, steps []string) error {
	out, err := runStepSequence(cmd.Context(), in, steps)
	if err != nil {
		return err
	}
	if flagDumpOut != "" {
		if err := writeJSONFile(flagDumpOut, out); err != nil {
			return err
		}
	}
	return printReportOneLine(cmd.OutOrStdout(), out)
}

func findStepIndex(steps []string, name string, flagName string) (int, error) {
	for i, cur := range steps {
		if cur == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown %s: %s", flagName, name)
}

func resolveTargetStep(steps []string) (string, error) {
	if flagStepIndex >= 0 {
		if flagStepIndex >= len(steps) {
			return "", fmt.Errorf("--step-index out of range: %d", flagStepIndex)
		}
		return steps[flagStepIndex], nil
	}
	if _, err := findStepIndex(steps, flagStep, "--step"); err != nil {
		return "", err
	}
	return flagStep, nil
}

func runDiagnoseWithIn(cmd *cobra.Command) error {
	if !step.Known(flagStep) {
		return fmt.Errorf("unknown --step: %s", flagStep)
	}
	in, err := readReport(flagIn)
	if err != nil {
		return err
	}
	return runStepsAndRender(cmd, in, []string{flagStep})
}

// runDiagnosePrepared loads the config, then runs either a prefix of the
// prepared pipeline or a single step of it.
func runDiagnosePrepared(cmd *cobra.Command) error {
	in := step.NewReport(flagArgs)
	if in.Meta == nil {
		in.Meta = &step.Meta{}
	}
	in.Meta.ConfigPath = flagConfig
	loaded, err := step.Run(cmd.Context(), "load-config", in, step.Deps{})
	if err != nil {
		return err
	}
	steps := step.Prepared(loaded.Meta)

	if flagUntilStep != "" {
		idx, err := findStepIndex(steps, flagUntilStep, "--until-step")
		if err != nil {
			return err
		}
		return runStepsAndRender(cmd, loaded, steps[:idx+1])
	}
	target, err := resolveTargetStep(steps)
	if err != nil {
		return err
	}
	return runStepsAndRender(cmd, loaded, []string{target})
}
