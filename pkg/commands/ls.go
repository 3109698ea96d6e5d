package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ldr/pkg/commands/options"
	"tableflip.dev/ldr/pkg/runner/ls"
	"tableflip.dev/ldr/pkg/store"
)

func addLs(topLevel *cobra.Command) {
	so := &options.ShowOptions{}
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:     "ls [filter]",
		Aliases: []string{"l", "list"},
		Short:   "Show the top items of a list",
		Example: `
ldr ls
ldr ls -n 10
ldr ls --all
ldr ls book
ldr ls --lists
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				so.Filter = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := ls.List{
				List:        to.List,
				Num:         so.Num,
				All:         so.All,
				Filter:      so.Filter,
				Lists:       so.Lists,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowArgs(cmd, so)
	options.AddTargetArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
