// Package todo holds the in-memory model for active task lists: a document
// of named lists, each an ordered run of tasks with single-level subtasks.
// The package is pure; reading and writing the underlying files belongs to
// the store.
package todo

// Subtask is a one-level child of a task. Subtasks cannot nest; the type
// carries no child sequence so deeper nesting is unrepresentable.
type Subtask struct {
	Text string
}

// Task is a top-level list entry with an ordered run of subtasks.
type Task struct {
	Text     string
	Subtasks []Subtask
}

// NewTask returns a task with no subtasks.
func NewTask(text string) *Task {
	return &Task{Text: text}
}

// AddSubtask appends a subtask, preserving order.
func (t *Task) AddSubtask(text string) {
	t.Subtasks = append(t.Subtasks, Subtask{Text: text})
}

// PrependSubtask inserts a subtask at the front.
func (t *Task) PrependSubtask(text string) {
	t.Subtasks = append([]Subtask{{Text: text}}, t.Subtasks...)
}

// SubtaskCount returns the number of subtasks.
func (t *Task) SubtaskCount() int {
	return len(t.Subtasks)
}

// HasSubtasks reports whether the task owns any subtasks.
func (t *Task) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}
