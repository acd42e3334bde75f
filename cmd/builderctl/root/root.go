package root

import (
	"github.com/flarebyte/builder/cmd/builderctl/basic"
	"github.com/flarebyte/builder/cmd/builderctl/diagnose"
	"github.com/flarebyte/builder/cmd/builderctl/run"
	"github.com/flarebyte/builder/cmd/builderctl/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for builderctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builderctl",
		Short: "Run the builder demo steps one at a time or as a configured pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(run.Cmd)
	cmd.AddCommand(diagnose.Cmd)
	cmd.AddCommand(basic.NewGreetCmd())
	cmd.AddCommand(basic.NewAddCmd())
	cmd.AddCommand(basic.NewSumCmd())
	cmd.AddCommand(basic.NewCwdCmd())
	cmd.AddCommand(basic.NewFilesCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
