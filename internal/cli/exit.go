// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// exitError carries a process exit status. Its message has already been
// written by the command, so Execute prints nothing more.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// abort writes ">E tool: message" to w and returns the exit error for it.
func abort(w io.Writer, tool, format string, args ...any) error {
	fmt.Fprintf(w, ">E %s: %s\n", tool, fmt.Sprintf(format, args...))
	return &exitError{code: 1}
}

// Execute runs cmd with args and returns the process exit status.
// Unlike cobra, a nil args means no arguments rather than os.Args.
func Execute(cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), ">E %s: %v\n", cmd.Name(), err)
	return 1
}
