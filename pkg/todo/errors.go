package todo

import (
	"errors"
	"fmt"
)

// ErrEmptyText rejects adding an item whose text is empty after trimming.
var ErrEmptyText = errors.New("todo: item text is empty")

// ListNotFoundError reports a lookup of a list the document does not hold.
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("todo: list %q not found", e.Name)
}

// OrphanSubtaskError reports a subtask line with no task above it.
type OrphanSubtaskError struct {
	Line int
	Text string
}

func (e *OrphanSubtaskError) Error() string {
	return fmt.Sprintf("todo: subtask without a parent task at line %d: %s", e.Line, e.Text)
}

// NestingError reports indentation deeper than the single supported level.
type NestingError struct {
	Line int
	Text string
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("todo: nesting deeper than one level at line %d: %s", e.Line, e.Text)
}
