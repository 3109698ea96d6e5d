package ref

import (
	"errors"
	"testing"

	"tableflip.dev/ldr/pkg/todo"
)

func TestParseTokenGrammar(t *testing.T) {
	tests := []struct {
		token   string
		ordinal int
		letter  rune
		ok      bool
	}{
		{token: "1", ordinal: 1, ok: true},
		{token: "12", ordinal: 12, ok: true},
		{token: "3b", ordinal: 3, letter: 'b', ok: true},
		{token: "10z", ordinal: 10, letter: 'z', ok: true},
		{token: "007", ordinal: 7, ok: true},
		{token: ""},
		{token: "a"},
		{token: "1A"},
		{token: "1ab"},
		{token: "1a2"},
		{token: "1-2"},
		{token: " 1"},
		{token: "b3"},
	}

	for _, tc := range tests {
		r, err := Parse(tc.token)
		if !tc.ok {
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Errorf("Parse(%q): expected SyntaxError, got %v", tc.token, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.token, err)
			continue
		}
		if r.Ordinal != tc.ordinal || r.Letter != tc.letter {
			t.Errorf("Parse(%q) = ordinal %d letter %q, want %d %q",
				tc.token, r.Ordinal, r.Letter, tc.ordinal, tc.letter)
		}
	}
}

func testList(t *testing.T, tasks int, subtasks int) *todo.List {
	t.Helper()
	doc := todo.NewDocument()
	list := doc.Default()
	for i := tasks; i >= 1; i-- {
		if _, err := list.Prepend("task"); err != nil {
			t.Fatalf("prepend: %v", err)
		}
	}
	for i := 0; i < subtasks; i++ {
		if err := list.PrependSubtask(0, "sub"); err != nil {
			t.Fatalf("subtask: %v", err)
		}
	}
	return list
}

func TestResolve(t *testing.T) {
	list := testList(t, 3, 2)

	coords, err := Resolve(list, []string{"2", "1a", "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []todo.Coordinate{todo.WholeTask(1), todo.At(0, 0), todo.WholeTask(0)}
	if len(coords) != len(want) {
		t.Fatalf("got %v, want %v", coords, want)
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestResolveDedupKeepsFirst(t *testing.T) {
	list := testList(t, 3, 0)

	coords, err := Resolve(list, []string{"2", "1", "2", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("expected duplicates dropped, got %v", coords)
	}
	if coords[0] != todo.WholeTask(1) || coords[1] != todo.WholeTask(0) {
		t.Fatalf("first occurrence must win: %v", coords)
	}
}

func TestResolveKeepsTaskAndItsSubtaskDistinct(t *testing.T) {
	list := testList(t, 1, 1)

	coords, err := Resolve(list, []string{"1", "1a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("a task and its subtask are distinct units: %v", coords)
	}
}

func TestResolveTaskOutOfRange(t *testing.T) {
	list := testList(t, 2, 0)

	for _, token := range []string{"0", "3", "99"} {
		_, err := Resolve(list, []string{"1", token})
		var rangeErr *TaskRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Resolve(%q): expected TaskRangeError, got %v", token, err)
			continue
		}
		if rangeErr.Count != 2 {
			t.Errorf("Resolve(%q): expected count 2, got %d", token, rangeErr.Count)
		}
	}
}

func TestResolveSubtaskOutOfRange(t *testing.T) {
	list := testList(t, 1, 2)

	_, err := Resolve(list, []string{"1c"})
	var rangeErr *SubtaskRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected SubtaskRangeError, got %v", err)
	}
	if rangeErr.Letter != 'c' || rangeErr.Count != 2 {
		t.Fatalf("unexpected error fields: %+v", rangeErr)
	}
}

func TestResolveFailsWholeBatch(t *testing.T) {
	list := testList(t, 2, 0)

	coords, err := Resolve(list, []string{"1", "bogus", "2"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if coords != nil {
		t.Fatalf("a failing batch must yield no coordinates, got %v", coords)
	}
}
