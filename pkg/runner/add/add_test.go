package add

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

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

func TestAddPrependsToDefault(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] existing\n"

	s := Add{Text: "new item", List: todo.DefaultList, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "- [ ] new item\n- [ ] existing\n"
	if got := p.files[store.TodoFile]; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAddCreatesNamedList(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] default item\n"

	s := Add{Text: "work item", List: "Work", Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := todo.Parse(p.files[store.TodoFile])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	work, err := doc.List("Work")
	if err != nil {
		t.Fatalf("Work list not created: %v", err)
	}
	if work.TaskCount() != 1 || work.Tasks[0].Text != "work item" {
		t.Fatalf("unexpected Work tasks: %v", work.Tasks)
	}
	if doc.Default().TaskCount() != 1 {
		t.Fatalf("Default must be untouched")
	}
}

func TestAddUnderPrependsSubtask(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] parent\n  - [ ] old sub\n"

	s := Add{Text: "new sub", List: todo.DefaultList, Under: "1", Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "- [ ] parent\n  - [ ] new sub\n  - [ ] old sub\n"
	if got := p.files[store.TodoFile]; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAddUnderRejectsSubtaskToken(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] parent\n"

	s := Add{Text: "sub", List: todo.DefaultList, Under: "1a", Persistence: p}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a subtask token in --under")
	}
	if got := p.files[store.TodoFile]; got != "- [ ] parent\n" {
		t.Fatalf("failed add must not touch the file: %q", got)
	}
}

func TestAddUnderOutOfRange(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] only\n"

	s := Add{Text: "sub", List: todo.DefaultList, Under: "2", Persistence: p}
	err := s.Do(context.Background())
	var rangeErr *ref.TaskRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected TaskRangeError, got %v", err)
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	p := newMemoryStore()
	p.files[store.TodoFile] = "- [ ] only\n"

	s := Add{Text: "  ", List: todo.DefaultList, Persistence: p}
	if err := s.Do(context.Background()); !errors.Is(err, todo.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}
