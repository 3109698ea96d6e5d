// Package do provides the runner logic for archiving completed items.
package do

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/ldr/pkg/archive"
	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/ref"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

const layoutISO = "2006-01-02"

// Archive moves referenced items from the active list into today's archive
// section.
type Archive struct {
	List string
	Refs []string
	Now  func() time.Time // defaults to time.Now

	Persistence store.Persistence
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not archive, no persistence")
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
		pp.Notice("No notes to archive.")
		return nil
	}

	archiveContent, err := n.Persistence.Read(store.ArchiveFile)
	if err != nil {
		return err
	}
	arch, err := archive.Parse(archiveContent)
	if err != nil {
		return err
	}

	coords, err := ref.Resolve(list, n.Refs)
	if err != nil {
		return err
	}

	removed := list.Remove(coords)
	arch.Add(n.List, n.today(), removed)

	if err := n.Persistence.Write(store.ArchiveFile, arch.Serialize()); err != nil {
		return err
	}
	if err := n.Persistence.Write(store.TodoFile, doc.Serialize()); err != nil {
		return err
	}

	pp.Confirm("Archived %d item(s)", len(removed))
	pp.Removed(removed)
	return nil
}

func (n *Archive) today() string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return now().Format(layoutISO)
}
