package diagnose

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flarebyte/builder/internal/step"
	"github.com/spf13/cobra"
)

var (
	flagStep      string
	flagStepIndex int
	flagUntilStep string
	flagIn        string
	flagDumpOut   string
	flagDumpDir   string
	flagConfig    string
	flagArgs      []string
)

// Cmd implements `builderctl diagnose`.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Run a single builder step and print the report",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagIn != "" {
			if flagStep == "" {
				return errors.New("missing required flag: --step")
			}
			return runDiagnoseWithIn(cmd)
		}
		if flagStep == "" && flagStepIndex < 0 && flagUntilStep == "" {
			return errors.New("missing required flag: --step")
		}
		return runDiagnosePrepared(cmd)
	},
}

func init() {
	Cmd.Flags().StringVar(&flagStep, "step", "", "Step name")
	Cmd.Flags().IntVar(&flagStepIndex, "step-index", -1, "Step index in the prepared pipeline (0-based)")
	Cmd.Flags().StringVar(&flagUntilStep, "until-step", "", "Run the prepared pipeline through this step (inclusive)")
	Cmd.Flags().StringVar(&flagIn, "in", "", "Path to an input report JSON")
	Cmd.Flags().StringVar(&flagDumpOut, "dump-out", "", "Path to write the output report JSON")
	Cmd.Flags().StringVar(&flagDumpDir, "dump-dir", "", "Directory to write per-step dumps (<seq>_<step>_{in,out}.json)")
	Cmd.Flags().StringVar(&flagConfig, "config", "", "Config path used when --in is omitted")
	Cmd.Flags().StringArrayVar(&flagArgs, "arg", nil, "Program argument for echo-args (repeatable)")
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dump dir: %w", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func readReport(path string) (step.Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return step.Report{}, fmt.Errorf("failed to read input: %w", err)
	}
	var r step.Report
	if err := json.Unmarshal(b, &r); err != nil {
		return step.Report{}, fmt.Errorf("invalid input JSON: %v", err)
	}
	if r.Lines == nil {
		r.Lines = []step.Line{}
	}
	return r, nil
}

func printReportOneLine(w io.Writer, r step.Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
