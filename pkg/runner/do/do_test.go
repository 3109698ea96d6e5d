package do

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/ldr/pkg/ref"
	"tableflip.dev/ldr/pkg/store"
	"tableflip.dev/ldr/pkg/todo"
)

type memoryStore struct {
	files map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{files: make(map[string]string)}
}

func (m *memoryStore) Read(name string) (string, error) { return m.files[name], nil }
func (m *memoryStore) Write(name, content string) error {
	m.files[name] = content
	return nil
}
func (m *memoryStore) Has(name string) bool {
	_, ok := m.files[name]
	return ok
}
func (m *memoryStore) Path(name string) string { return filepath.Join("/tmp", name) }

var _ store.Persistence = (*memoryStore)(nil)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
}

func TestArchiveMovesItems(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] first\n- [ ] second\n  - [ ] detail\n- [ ] third\n"

	s := Archive{List: todo.DefaultList, Refs: []string{"2", "1"}, Now: fixedNow, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.files[store.TodoFile]; got != "- [ ] third\n" {
		t.Fatalf("unexpected todos: %q", got)
	}
	wantArchive := "### 2026-08-24\n- [x] second\n  - [x] detail\n- [x] first\n"
	if got := p.files[store.ArchiveFile]; got != wantArchive {
		t.Fatalf("unexpected archive:\ngot  %q\nwant %q", got, wantArchive)
	}
}

func TestArchiveAppendsToSameDay(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] a\n- [ ] b\n"
	p.files[store.ArchiveFile] = "### 2026-08-24\n- [x] earlier\n"

	s := Archive{List: todo.DefaultList, Refs: []string{"1"}, Now: fixedNow, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "### 2026-08-24\n- [x] earlier\n- [x] a\n"
	if got := p.files[store.ArchiveFile]; got != want {
		t.Fatalf("unexpected archive: %q", got)
	}
}

func TestArchiveSubtaskAlone(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] parent\n  - [ ] done bit\n  - [ ] still open\n"

	s := Archive{List: todo.DefaultList, Refs: []string{"1a"}, Now: fixedNow, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.files[store.TodoFile]; got != "- [ ] parent\n  - [ ] still open\n" {
		t.Fatalf("unexpected todos: %q", got)
	}
	if got := p.files[store.ArchiveFile]; got != "### 2026-08-24\n- [x] done bit\n" {
		t.Fatalf("unexpected archive: %q", got)
	}
}

func TestArchiveBadRefLeavesFilesAlone(t *testing.T) {
	p := newMemoryStore()
	before := "- [ ] only\n"
	p.files[store.TodoFile] = before

	s := Archive{List: todo.DefaultList, Refs: []string{"1", "9"}, Now: fixedNow, Persistence: p}
	err := s.Do(context.Background())
	var rangeErr *ref.TaskRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected TaskRangeError, got %v", err)
	}
	if p.files[store.TodoFile] != before {
		t.Fatalf("failed batch must not touch the todo file")
	}
	if p.Has(store.ArchiveFile) {
		t.Fatalf("failed batch must not create the archive")
	}
}

func TestArchiveUnknownList(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] only\n"

	s := Archive{List: "Nope", Refs: []string{"1"}, Now: fixedNow, Persistence: p}
	err := s.Do(context.Background())
	var notFound *todo.ListNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError, got %v", err)
	}
}
