// Package ls provides the runner logic for listing items.
package ls

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// List shows the top items of a list, optionally filtered, or a summary of
// every list.
type List struct {
	List   string
	Num    int
	All    bool
	Filter string
	Lists  bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	content, err := n.Persistence.Read(store.TodoFile)
	if err != nil {
		return err
	}
	doc, err := todo.Parse(content)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if n.Lists {
		pp.Lists(doc)
		return nil
	}

	list, err := doc.List(n.List)
	if err != nil {
		return err
	}
	if list.IsEmpty() {
		pp.Notice("No notes yet.")
		return nil
	}

	rows := printers.NumberedRows(list)
	if n.Filter != "" {
		rows = printers.FilteredRows(list, n.Filter)
		if len(rows) == 0 {
			pp.Notice(fmt.Sprintf("No items found matching filter: %q", n.Filter))
			return nil
		}
	}

	limit := len(rows)
	if !n.All && n.Num < limit {
		limit = n.Num
	}

	pp.Items(rows[:limit])
	if rest := len(rows) - limit; rest > 0 {
		pp.More(rest)
	}
	return nil
}
