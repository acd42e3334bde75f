// Package exitcode carries process exit codes on errors.
package exitcode

import "fmt"

const (
	Success = 0
	ExecErr = 1
	Usage   = 2
)

// Error is an error reporting the exit code main should use.
type Error struct {
	code int
	msg  string
}

func (e Error) Error() string { return e.msg }
func (e Error) ExitCode() int { return e.code }

// Usagef returns an error exiting with Usage.
func Usagef(format string, args ...any) error {
	return Error{code: Usage, msg: fmt.Sprintf(format, args...)}
}

// Of returns the exit code for err: Success for nil, the carried code when
// err has one, ExecErr otherwise.
func Of(err error) int {
	if err == nil {
		return Success
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return ExecErr
}
