package run

import (
	"github.com/flarebyte/builder/internal/config"
	"github.com/flarebyte/builder/internal/exitcode"
	"github.com/flarebyte/builder/internal/report"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	flagFormat string
	flagTrace  bool
)

// Cmd represents the `builderctl run` command.
var Cmd = &cobra.Command{
	Use:           "run [-- arguments...]",
	Short:         "Run the builder steps driven by a CUE config",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatChanged := cmd.Flags().Changed("format")
		if formatChanged && !config.IsOutputFormat(flagFormat) {
			return exitcode.Usagef("invalid --format: %s (supported: text, json, yaml)", flagFormat)
		}
		if cfgPath != "" {
			if err := config.LoadAndValidate(cfgPath); err != nil {
				return err
			}
		}
		tracer := newTraceReporter(flagTrace, cmd.ErrOrStderr())
		out, err := executePipeline(cmd.Context(), cfgPath, args, tracer)
		if err != nil {
			return err
		}
		format := outputFormat(out)
		if formatChanged {
			format = flagFormat
		}
		return report.Render(cmd.OutOrStdout(), out, format)
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue); built-in defaults when omitted")
	Cmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text|json|yaml (overrides output.format)")
	Cmd.Flags().BoolVar(&flagTrace, "trace", false, "Print one trace line per step to stderr")
}
