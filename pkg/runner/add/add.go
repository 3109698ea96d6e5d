// Package add provides the runner logic for logging a new item.
package add

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/ref"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// Add prepends a task to a list, or a subtask to an existing task when
// Under carries a task number.
type Add struct {
	Text  string
	List  string
	Under string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	content, err := n.Persistence.Read(store.TodoFile)
	if err != nil {
		return err
	}
	doc, err := todo.Parse(content)
	if err != nil {
		return err
	}
	list := doc.GetOrCreate(n.List)

	pp := printers.PrettyPrint{}
	if n.Under != "" {
		r, err := ref.Parse(n.Under)
		if err != nil {
			return err
		}
		if r.IsSubtask() {
			return fmt.Errorf("add: --under takes a task number, not %q", n.Under)
		}
		if r.Ordinal < 1 || r.Ordinal > list.TaskCount() {
			return &ref.TaskRangeError{Token: n.Under, Ordinal: r.Ordinal, Count: list.TaskCount()}
		}
		if err := list.PrependSubtask(r.Ordinal-1, n.Text); err != nil {
			return err
		}
		pp.Confirm("Added subtask to task %d: %s", r.Ordinal, strings.TrimSpace(n.Text))
	} else {
		t, err := list.Prepend(n.Text)
		if err != nil {
			return err
		}
		pp.Confirm("Added: %s", t.Text)
	}

	return n.Persistence.Write(store.TodoFile, doc.Serialize())
}
