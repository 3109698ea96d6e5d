// Package rm provides the runner logic for deleting items without a trace.
package rm

import (
	"context"
	"errors"

	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/ref"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// Remove discards referenced items. Unlike archiving, nothing is recorded.
type Remove struct {
	List string
	Refs []string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	content, err := n.Persistence.Read(store.TodoFile)
	if err != nil {
		return err
	}
	doc, err := todo.Parse(content)
	if err != nil {
		return err
	}
	list, err := doc.List(n.List)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if list.IsEmpty() {
		pp.Notice("No notes to remove.")
		return nil
	}

	coords, err := ref.Resolve(list, n.Refs)
	if err != nil {
		return err
	}
	removed := list.Remove(coords)

	if err := n.Persistence.Write(store.TodoFile, doc.Serialize()); err != nil {
		return err
	}

	pp.Confirm("Removed %d item(s)", len(removed))
	pp.Removed(removed)
	return nil
}
