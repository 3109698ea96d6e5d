package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ldr/pkg/commands/options"
	"tableflip.dev/ldr/pkg/runner/review"
	"tableflip.dev/ldr/pkg/store"
)

func addReview(topLevel *cobra.Command) {
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:     "review",
		Aliases: []string{"r"},
		Short:   "Walk a list top-down and decide each item",
		Example: `
ldr review
ldr review --list Work
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := review.Review{
				List:        to.List,
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
