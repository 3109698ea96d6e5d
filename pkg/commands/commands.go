// Package commands wires the cobra command tree for ldr.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ldr",
		Short: base.Wrap80("Log, do, review. Append-and-review todos on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return maybeMigrate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addLs(topLevel)
	addUp(topLevel)
	addDo(topLevel)
	addRm(topLevel)
	addEdit(topLevel)
	addReview(topLevel)
	addVersion(topLevel)
}
