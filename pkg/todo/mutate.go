package todo

import (
	"fmt"
	"sort"
	"strings"
)

// Capacity limits. Subtask references only reach the letter z, and the
// other two keep a hand-edited file from growing without bound.
const (
	MaxTasks    = 1000
	MaxSubtasks = 26
	MaxTextLen  = 500
)

func validText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if len(text) > MaxTextLen {
		return "", fmt.Errorf("todo: item text is %d characters, the maximum is %d", len(text), MaxTextLen)
	}
	return text, nil
}

// Prepend inserts a new task at the front of the list.
func (l *List) Prepend(text string) (*Task, error) {
	text, err := validText(text)
	if err != nil {
		return nil, err
	}
	if len(l.Tasks) >= MaxTasks {
		return nil, fmt.Errorf("todo: list %q already holds the maximum of %d tasks", l.Name, MaxTasks)
	}
	t := NewTask(text)
	l.Tasks = append([]*Task{t}, l.Tasks...)
	return t, nil
}

// PrependSubtask inserts a new subtask at the front of the task at the given
// 0-based index. The index must be resolved against this list state.
func (l *List) PrependSubtask(task int, text string) error {
	text, err := validText(text)
	if err != nil {
		return err
	}
	t := l.Tasks[task]
	if len(t.Subtasks) >= MaxSubtasks {
		return fmt.Errorf("todo: task %d already holds the maximum of %d subtasks", task+1, MaxSubtasks)
	}
	t.PrependSubtask(text)
	return nil
}

// Prioritize moves the referenced tasks to the front of the list, keeping
// the batch order among them: the first-referenced task ends up topmost.
// Unreferenced tasks retain their relative order below. A subtask
// coordinate reorders within its parent task's subtask run instead.
// Coordinates must come from resolution against this list state. The
// returned texts name the moved units in batch order.
func (l *List) Prioritize(coords []Coordinate) []string {
	moved := make([]string, 0, len(coords))
	var taskOrder []int
	taskPicked := make(map[int]bool)
	var parentOrder []*Task
	parentSubs := make(map[*Task][]int)

	for _, c := range coords {
		if c.IsSubtask() {
			p := l.Tasks[c.Task]
			moved = append(moved, p.Subtasks[c.Subtask].Text)
			if _, ok := parentSubs[p]; !ok {
				parentOrder = append(parentOrder, p)
			}
			parentSubs[p] = append(parentSubs[p], c.Subtask)
			continue
		}
		moved = append(moved, l.Tasks[c.Task].Text)
		if !taskPicked[c.Task] {
			taskPicked[c.Task] = true
			taskOrder = append(taskOrder, c.Task)
		}
	}

	// subtask reordering works on task pointers, so it is unaffected by the
	// whole-task reorder below
	for _, p := range parentOrder {
		reorderSubtasks(p, parentSubs[p])
	}

	if len(taskOrder) > 0 {
		next := make([]*Task, 0, len(l.Tasks))
		for _, idx := range taskOrder {
			next = append(next, l.Tasks[idx])
		}
		for i, t := range l.Tasks {
			if !taskPicked[i] {
				next = append(next, t)
			}
		}
		l.Tasks = next
	}

	return moved
}

func reorderSubtasks(t *Task, subs []int) {
	picked := make(map[int]bool)
	var order []int
	for _, s := range subs {
		if !picked[s] {
			picked[s] = true
			order = append(order, s)
		}
	}
	next := make([]Subtask, 0, len(t.Subtasks))
	for _, s := range order {
		next = append(next, t.Subtasks[s])
	}
	for i, s := range t.Subtasks {
		if !picked[i] {
			next = append(next, s)
		}
	}
	t.Subtasks = next
}

// Remove takes the referenced units out of the list and returns them in
// batch order, ready for archiving or discard. A whole-task coordinate
// removes the task together with its subtasks as one unit; a subtask
// coordinate removes only that subtask, returned as a standalone task with
// the parent left in place. A subtask coordinate whose parent is also
// removed whole is subsumed by it. Coordinates must come from resolution
// against this list state.
func (l *List) Remove(coords []Coordinate) []*Task {
	wholly := make(map[int]bool)
	for _, c := range coords {
		if !c.IsSubtask() {
			wholly[c.Task] = true
		}
	}

	removed := make([]*Task, 0, len(coords))
	work := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		if c.IsSubtask() {
			if wholly[c.Task] {
				continue
			}
			removed = append(removed, NewTask(l.Tasks[c.Task].Subtasks[c.Subtask].Text))
		} else {
			removed = append(removed, l.Tasks[c.Task])
		}
		work = append(work, c)
	}

	// apply removals in descending position order so an earlier removal
	// never shifts a position that is still pending; the batch order above
	// is what callers see
	sort.Slice(work, func(i, j int) bool {
		if work[i].Task != work[j].Task {
			return work[i].Task > work[j].Task
		}
		return work[i].Subtask > work[j].Subtask
	})
	for _, c := range work {
		if c.IsSubtask() {
			t := l.Tasks[c.Task]
			t.Subtasks = append(t.Subtasks[:c.Subtask], t.Subtasks[c.Subtask+1:]...)
		} else {
			l.Tasks = append(l.Tasks[:c.Task], l.Tasks[c.Task+1:]...)
		}
	}
	return removed
}
