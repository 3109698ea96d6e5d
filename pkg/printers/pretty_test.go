package printers

import (
	"testing"

	"tableflip.dev/ldr/pkg/todo"
)

func rowsList(t *testing.T) *todo.List {
	t.Helper()
	doc, err := todo.Parse("- [ ] Read: Go book\n  - [ ] chapter one\n  - [ ] chapter two\n- [ ] fix the bike\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc.Default()
}

func TestNumberedRows(t *testing.T) {
	rows := NumberedRows(rowsList(t))

	want := []Line{
		TaskLine(1, "Read: Go book"),
		SubtaskLine(1, 0, "chapter one"),
		SubtaskLine(1, 1, "chapter two"),
		TaskLine(2, "fix the bike"),
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestFilteredRowsTaskMatchKeepsAllSubtasks(t *testing.T) {
	rows := FilteredRows(rowsList(t), "go book")

	if len(rows) != 3 {
		t.Fatalf("a task match should bring every subtask, got %d rows", len(rows))
	}
	if rows[0].TaskNumber != 1 || rows[0].Subtask != -1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestFilteredRowsSubtaskMatchKeepsParent(t *testing.T) {
	rows := FilteredRows(rowsList(t), "chapter two")

	if len(rows) != 2 {
		t.Fatalf("expected the parent and the matching subtask, got %d rows", len(rows))
	}
	if rows[0].Text != "Read: Go book" || rows[1].Text != "chapter two" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestFilteredRowsNoMatch(t *testing.T) {
	if rows := FilteredRows(rowsList(t), "nothing here"); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestFilteredRowsCaseInsensitive(t *testing.T) {
	rows := FilteredRows(rowsList(t), "BIKE")
	if len(rows) != 1 || rows[0].Text != "fix the bike" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
