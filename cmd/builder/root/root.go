package root

import (
	"context"
	"fmt"
	"io"

	"github.com/flarebyte/builder/internal/step"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the builder command. Every argument is free-form and
// echoed back; flags are not interpreted.
func NewRootCmd() *cobra.Command {
	return newRootCmd(step.Deps{})
}

func newRootCmd(deps step.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "builder [arguments...]",
		Short:              "Greet the builder, add, sum, show the working directory and echo arguments",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := step.RunAll(cmd.Context(), step.NewReport(args), step.DefaultSteps, deps, streamLines(cmd.OutOrStdout()))
			return err
		},
	}
	return cmd
}

// streamLines writes the lines each step adds as soon as the step returns,
// so output produced before a failing step is kept.
func streamLines(w io.Writer) step.AfterFunc {
	printed := 0
	return func(_ string, out step.Report) {
		for _, l := range out.Lines[printed:] {
			_, _ = fmt.Fprintln(w, l.Text)
		}
		printed = len(out.Lines)
	}
}

// Execute runs the builder command with provided args.
func Execute(args []string) error {
	return execute(NewRootCmd(), args)
}

// execute calls RunE directly. cobra's Execute routes words such as
// __complete to hidden subcommands, and every argument here is free-form.
func execute(cmd *cobra.Command, args []string) error {
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	return cmd.RunE(cmd, append([]string{}, args...))
}
