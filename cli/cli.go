package cli

import "strings"

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/builder/cli.Version=1.2.3' -X 'github.com/flarebyte/builder/cli.Date=2026-02-09'"
var (
	Version string
	Date    string
)

// NiceDate returns Date with dashes replaced by spaces for display.
func NiceDate() string {
	return strings.ReplaceAll(Date, "-", " ")
}
