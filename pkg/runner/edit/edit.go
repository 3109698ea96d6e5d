// Package edit provides the runner logic for hand-editing the todo file.
package edit

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// Edit opens the todo file in $EDITOR, creating it first when absent.
type Edit struct {
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	if !n.Persistence.Has(store.TodoFile) {
		if err := n.Persistence.Write(store.TodoFile, todo.NewDocument().Serialize()); err != nil {
			return err
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.CommandContext(ctx, editor, n.Persistence.Path(store.TodoFile))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
