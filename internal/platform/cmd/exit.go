package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ExitCode reports err on w and returns the process exit status for it.
// An interrupted command exits cleanly.
func ExitCode(w io.Writer, err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	fmt.Fprintf(w, "portfolio: %v\n", err)
	return 1
}
