// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ldr/pkg/todo"
)

// TargetOptions selects the list a command operates on.
type TargetOptions struct {
	List string
}

// AddTargetArgs wires the target-list flag on the provided command.
func AddTargetArgs(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().StringVarP(&o.List, "list", "l", todo.DefaultList,
		"Specify the target list.")
}

// AddOptions
type AddOptions struct {
	Message string
	Under   string
}

func AddUnderArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Under, "under", "",
		`Add as a subtask under this task number, example: --under=3.`)
}

// ShowOptions
type ShowOptions struct {
	Num    int
	All    bool
	Filter string
	Lists  bool
}

func AddShowArgs(cmd *cobra.Command, o *ShowOptions) {
	cmd.Flags().IntVarP(&o.Num, "num", "n", 5,
		"Show the top N items.")
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Show all items.")
	cmd.Flags().BoolVar(&o.Lists, "lists", false,
		"Show a summary of every list instead.")
}

// RefOptions
type RefOptions struct {
	Refs []string
}
