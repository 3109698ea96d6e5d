package todo

import "fmt"

// Coordinate addresses a task, or one of its subtasks, by position within a
// list. Positions are 0-based and only meaningful against the list state
// they were resolved from.
type Coordinate struct {
	Task    int
	Subtask int // 0-based subtask position, or -1 for the whole task
}

// WholeTask returns a coordinate naming the whole task at the given index.
func WholeTask(task int) Coordinate {
	return Coordinate{Task: task, Subtask: -1}
}

// At returns a coordinate naming a single subtask.
func At(task, subtask int) Coordinate {
	return Coordinate{Task: task, Subtask: subtask}
}

// IsSubtask reports whether the coordinate names a subtask rather than the
// whole task.
func (c Coordinate) IsSubtask() bool {
	return c.Subtask >= 0
}

// Token renders the coordinate in user reference form, e.g. "3" or "3b".
func (c Coordinate) Token() string {
	if c.IsSubtask() {
		return fmt.Sprintf("%d%c", c.Task+1, rune('a'+c.Subtask))
	}
	return fmt.Sprintf("%d", c.Task+1)
}
