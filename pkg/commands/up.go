package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ldr/pkg/commands/options"
	"tableflip.dev/ldr/pkg/runner/up"
	"tableflip.dev/ldr/pkg/store"
)

func addUp(topLevel *cobra.Command) {
	ro := &options.RefOptions{}
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:     "up <ref>...",
		Aliases: []string{"u", "prioritize"},
		Short:   "Move items to the top",
		Example: `
ldr up 3
ldr up 3 7 2b
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires at least one item reference")
			}
			ro.Refs = args
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := up.Up{
				List:        to.List,
				Refs:        ro.Refs,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTargetArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
