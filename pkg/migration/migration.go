// Package migration converts the legacy plain-text files (one task per
// line) into the structured format, once, on first run after upgrading.
package migration

import (
	"fmt"
	"strings"

	"tableflip.dev/ldr/pkg/archive"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

// Needed reports whether legacy files exist while the structured files do
// not.
func Needed(p store.Persistence) bool {
	hasOld := p.Has(store.LegacyTodoFile) || p.Has(store.LegacyArchiveFile)
	hasNew := p.Has(store.TodoFile) || p.Has(store.ArchiveFile)
	return hasOld && !hasNew
}

// Result summarizes a completed migration.
type Result struct {
	Tasks    int
	Archived int
}

// Run converts both legacy files, backs the originals up with a .bak
// suffix, and writes the structured files. Legacy archive lines all land in
// one section dated today, since the plain format recorded no dates.
func Run(p store.Persistence, today string) (*Result, error) {
	res := &Result{}

	noteContent, err := p.Read(store.LegacyTodoFile)
	if err != nil {
		return nil, fmt.Errorf("migration: read %s: %w", store.LegacyTodoFile, err)
	}
	archiveContent, err := p.Read(store.LegacyArchiveFile)
	if err != nil {
		return nil, fmt.Errorf("migration: read %s: %w", store.LegacyArchiveFile, err)
	}

	if err := backup(p, store.LegacyTodoFile, noteContent); err != nil {
		return nil, err
	}
	if err := backup(p, store.LegacyArchiveFile, archiveContent); err != nil {
		return nil, err
	}

	doc := todo.NewDocument()
	list := doc.Default()
	for _, line := range splitLines(noteContent) {
		list.Tasks = append(list.Tasks, todo.NewTask(line))
		res.Tasks++
	}
	if err := p.Write(store.TodoFile, doc.Serialize()); err != nil {
		return nil, fmt.Errorf("migration: write %s: %w", store.TodoFile, err)
	}

	arch := archive.New()
	var done []*todo.Task
	for _, line := range splitLines(archiveContent) {
		done = append(done, todo.NewTask(line))
		res.Archived++
	}
	arch.Add(todo.DefaultList, today, done)
	if err := p.Write(store.ArchiveFile, arch.Serialize()); err != nil {
		return nil, fmt.Errorf("migration: write %s: %w", store.ArchiveFile, err)
	}

	return res, nil
}

func backup(p store.Persistence, name, content string) error {
	if !p.Has(name) {
		return nil
	}
	if err := p.Write(name+".bak", content); err != nil {
		return fmt.Errorf("migration: backup %s: %w", name, err)
	}
	return nil
}

func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
