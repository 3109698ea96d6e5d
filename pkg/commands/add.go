package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ldr/pkg/commands/options"
	"tableflip.dev/ldr/pkg/runner/add"
	"tableflip.dev/ldr/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a", "prepend"},
		Short:   "Add a new item at the top",
		Example: `
ldr add Read: Book XYZ
ldr add --under 3 verify the appendix
ldr add --list Work refactor the parser
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the item text")
			}
			ao.Message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Text:        ao.Message,
				List:        to.List,
				Under:       ao.Under,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddUnderArgs(cmd, ao)
	options.AddTargetArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
