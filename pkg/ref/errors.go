package ref

import "fmt"

// SyntaxError reports a token that does not match the reference grammar.
type SyntaxError struct {
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ref: invalid reference %q: %s", e.Token, e.Reason)
}

// TaskRangeError reports a task ordinal outside [1, task count].
type TaskRangeError struct {
	Token   string
	Ordinal int
	Count   int
}

func (e *TaskRangeError) Error() string {
	return fmt.Sprintf("ref: task %d out of range in %q, the list has %d tasks", e.Ordinal, e.Token, e.Count)
}

// SubtaskRangeError reports a subtask letter past the task's subtask run.
type SubtaskRangeError struct {
	Token   string
	Letter  rune
	Ordinal int
	Count   int
}

func (e *SubtaskRangeError) Error() string {
	return fmt.Sprintf("ref: subtask %q out of range in %q, task %d has %d subtasks", string(e.Letter), e.Token, e.Ordinal, e.Count)
}
