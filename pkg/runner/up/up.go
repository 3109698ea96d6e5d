// Package up provides the runner logic for prioritizing items.
package up

import (
	"context"
	"errors"

	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/ref"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// Up moves referenced tasks to the top of their list, or referenced
// subtasks to the top of their parent task.
type Up struct {
	List string
	Refs []string

	Persistence store.Persistence
}

func (n *Up) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not prioritize, no persistence")
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
		pp.Notice("No notes found.")
		return nil
	}

	coords, err := ref.Resolve(list, n.Refs)
	if err != nil {
		return err
	}
	moved := list.Prioritize(coords)

	if err := n.Persistence.Write(store.TodoFile, doc.Serialize()); err != nil {
		return err
	}

	pp.Confirm("Prioritized %d item(s)", len(moved))
	pp.Moved(moved)
	return nil
}
