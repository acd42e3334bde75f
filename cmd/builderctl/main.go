package main

import (
	"os"
	"strings"

	"github.com/flarebyte/builder/cmd/builderctl/root"
	"github.com/flarebyte/builder/internal/exitcode"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Print a short, single-line error to stderr on failures.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(exitcode.Of(err))
	}
}
