// Package review provides the interactive top-down review runner: walk the
// list one task at a time, mark each done, removed, or prioritized, and
// apply the whole batch on exit.
package review

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/ldr/pkg/archive"
	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

const layoutISO = "2006-01-02"

// Review runs the interactive review session for one list.
type Review struct {
	List string
	Now  func() time.Time // defaults to time.Now

	Persistence store.Persistence
}

func (n *Review) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not review, no persistence")
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
		pp.Notice("Nothing to review.")
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

	p := tea.NewProgram(newModel(n.List, list.Tasks), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return err
	}
	final, ok := out.(*model)
	if !ok {
		return errors.New("review: unexpected final model")
	}

	return n.apply(doc, list, arch, final, pp)
}

// apply turns the session's decisions into one engine batch: removals
// first (against the indices the user reviewed), then prioritization of
// the survivors, then quick-adds with the first-added ending topmost.
func (n *Review) apply(doc *todo.Document, list *todo.List, arch *archive.File, m *model, pp printers.PrettyPrint) error {
	original := append([]*todo.Task(nil), list.Tasks...)

	var coords []todo.Coordinate
	var toArchive []bool
	for _, ti := range m.order {
		switch m.decisions[ti] {
		case decisionDone:
			coords = append(coords, todo.WholeTask(ti))
			toArchive = append(toArchive, true)
		case decisionRemove:
			coords = append(coords, todo.WholeTask(ti))
			toArchive = append(toArchive, false)
		}
	}
	removed := list.Remove(coords)
	var archived []*todo.Task
	for i, t := range removed {
		if toArchive[i] {
			archived = append(archived, t)
		}
	}
	arch.Add(n.List, n.today(), archived)

	var upCoords []todo.Coordinate
	for _, ti := range m.order {
		if m.decisions[ti] != decisionUp {
			continue
		}
		if idx := indexOfTask(list.Tasks, original[ti]); idx >= 0 {
			upCoords = append(upCoords, todo.WholeTask(idx))
		}
	}
	moved := list.Prioritize(upCoords)

	added := 0
	for i := len(m.adds) - 1; i >= 0; i-- {
		if _, err := list.Prepend(m.adds[i]); err == nil {
			added++
		}
	}

	if len(archived) > 0 {
		if err := n.Persistence.Write(store.ArchiveFile, arch.Serialize()); err != nil {
			return err
		}
	}
	if err := n.Persistence.Write(store.TodoFile, doc.Serialize()); err != nil {
		return err
	}

	pp.Confirm("Review complete: %d archived, %d removed, %d prioritized, %d added",
		len(archived), len(removed)-len(archived), len(moved), added)
	pp.Removed(archived)
	return nil
}

func (n *Review) today() string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return now().Format(layoutISO)
}

func indexOfTask(tasks []*todo.Task, t *todo.Task) int {
	for i, candidate := range tasks {
		if candidate == t {
			return i
		}
	}
	return -1
}
