// Package portfolio wires the portfolio command line: serve runs the site and
// seed loads content into the local SQLite backend.
package portfolio

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the portfolio command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand())
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
