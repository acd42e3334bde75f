// Package basic exposes each builder operation as its own command.
package basic

import (
	"fmt"
	"strconv"

	"github.com/flarebyte/builder/internal/basics"
	"github.com/flarebyte/builder/internal/exitcode"
	"github.com/flarebyte/builder/internal/files"
	"github.com/flarebyte/builder/internal/step"
	"github.com/spf13/cobra"
)

// NewGreetCmd implements `builderctl greet [name]`.
func NewGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "greet [name]",
		Short:         "Print a greeting (name defaults to Builder)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := basics.DefaultName
			if len(args) == 1 {
				name = args[0]
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), basics.Greet(name))
			return err
		},
	}
}

// NewAddCmd implements `builderctl add <a> <b>`. Flags are not parsed so
// negative operands work.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <a> <b>",
		Short:              "Add two integers",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return exitcode.Usagef("add: expected 2 integers, got %d", len(args))
			}
			ints, err := parseInts(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), basics.FormatSum(ints[0], ints[1]))
			return err
		},
	}
}

// NewSumCmd implements `builderctl sum [n...]`.
func NewSumCmd() *cobra.Command {
	var aggregate, reduce string
	cmd := &cobra.Command{
		Use:           "sum [--aggregate kind] [--reduce lua] [--] [n...]",
		Short:         "Aggregate integers (use -- before negative numbers)",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !basics.IsAggregateKind(aggregate) {
				return exitcode.Usagef("invalid --aggregate: %s (supported: %s)", aggregate, basics.AggregateKindsCSV())
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			in := step.InputsMeta{Data: values, Aggregate: aggregate, ReduceInline: reduce}
			result, err := step.ProcessData(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), basics.FormatProcessed(result))
			return err
		},
	}
	cmd.Flags().StringVar(&aggregate, "aggregate", basics.AggregateSum, "Aggregate: "+basics.AggregateKindsCSV())
	cmd.Flags().StringVar(&reduce, "reduce", "", "Lua reducer over acc and item, replaces --aggregate")
	return cmd
}

// NewCwdCmd implements `builderctl cwd`.
func NewCwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cwd",
		Short:         "Print the current working directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := files.NewHandler().Cwd()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), basics.FormatWorkingDir(dir))
			return err
		},
	}
}

// NewFilesCmd implements `builderctl files`.
func NewFilesCmd() *cobra.Command {
	var root string
	var noGitignore bool
	cmd := &cobra.Command{
		Use:           "files",
		Short:         "List files under a root, honouring .gitignore",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := files.NewHandler().List(root, noGitignore)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range paths {
				if _, err := fmt.Fprintln(w, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "Root directory to list")
	cmd.Flags().BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, exitcode.Usagef("invalid integer: %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}
