package basics

import "fmt"

// FormatArgs renders the argument echo line. It returns false when there is
// nothing to echo.
func FormatArgs(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	return fmt.Sprintf("Arguments: %v", args), true
}

// FormatWorkingDir renders the working directory line.
func FormatWorkingDir(dir string) string {
	return "Working directory: " + dir
}
