package step

import (
	"context"
	"fmt"

	"github.com/flarebyte/builder/internal/basics"
)

func workingDirectoryRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	dir, err := deps.files().Cwd()
	if err != nil {
		return Report{}, err
	}
	return in.withLine(Line{Step: "working-directory", Text: basics.FormatWorkingDir(dir), Value: dir}), nil
}

// echoArgsRunner adds a line only when arguments were given.
func echoArgsRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	var args []string
	if in.Meta != nil {
		args = in.Meta.Args
	}
	text, ok := basics.FormatArgs(args)
	if !ok {
		return in, nil
	}
	return in.withLine(Line{Step: "echo-args", Text: text, Value: args}), nil
}

func listFilesRunner(ctx context.Context, in Report, deps Deps) (Report, error) {
	root, noGit := ".", false
	if in.Meta != nil && in.Meta.Files != nil {
		if in.Meta.Files.Root != "" {
			root = in.Meta.Files.Root
		}
		noGit = in.Meta.Files.NoGitignore
	}
	paths, err := deps.files().List(root, noGit)
	if err != nil {
		return Report{}, err
	}
	out := in.withLine(Line{Step: "list-files", Text: fmt.Sprintf("Files: %d", len(paths)), Value: paths})
	for _, p := range paths {
		out = out.withLine(Line{Step: "list-files", Text: "  " + p})
	}
	return out, nil
}

func init() {
	Register("working-directory", workingDirectoryRunner)
	Register("echo-args", echoArgsRunner)
	Register("list-files", listFilesRunner)
}
