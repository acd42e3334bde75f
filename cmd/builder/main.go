package main

import (
	"os"
	"strings"

	"github.com/flarebyte/builder/cmd/builder/root"
	"github.com/flarebyte/builder/internal/exitcode"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Print a short, single-line error to stderr on failures.
		// Do not print usage or stack traces.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(exitcode.Of(err))
	}
}
