// Package printers renders lists and confirmations for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ldr/pkg/todo"
)

// Line is one display row of a numbered listing: a task line, or a subtask
// line when Subtask >= 0.
type Line struct {
	TaskNumber int
	Subtask    int
	Text       string
}

// TaskLine builds a display row for a task.
func TaskLine(number int, text string) Line {
	return Line{TaskNumber: number, Subtask: -1, Text: text}
}

// SubtaskLine builds a display row for a subtask.
func SubtaskLine(number, subtask int, text string) Line {
	return Line{TaskNumber: number, Subtask: subtask, Text: text}
}

type PrettyPrint struct{}

// Tasks use two alternating color families by task number; subtasks inherit
// the family, dimmed.
var (
	oddTask     = color.New(color.FgHiCyan)
	evenTask    = color.New(color.FgHiYellow)
	oddSubtask  = color.New(color.FgCyan, color.Faint)
	evenSubtask = color.New(color.FgYellow, color.Faint)
)

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Items prints numbered task rows ("  1. text") and lettered subtask rows
// ("     a. text").
func (pp *PrettyPrint) Items(lines []Line) {
	for _, l := range lines {
		task := oddTask
		sub := oddSubtask
		if l.TaskNumber%2 == 0 {
			task = evenTask
			sub = evenSubtask
		}
		if l.Subtask < 0 {
			_, _ = task.Printf("%3d. %s\n", l.TaskNumber, l.Text)
		} else {
			_, _ = sub.Printf("     %c. %s\n", rune('a'+l.Subtask), l.Text)
		}
	}
}

// More notes how many rows were cut off by the display limit.
func (pp *PrettyPrint) More(n int) {
	y := color.New(color.FgYellow)
	_, _ = y.Printf("... and %d more items\n", n)
}

// Notice prints an informational line, e.g. "No notes yet."
func (pp *PrettyPrint) Notice(msg string) {
	y := color.New(color.FgYellow)
	_, _ = y.Println(msg)
}

// Confirm prints a green check line for a completed operation.
func (pp *PrettyPrint) Confirm(format string, args ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf("✓ "+format+"\n", args...)
}

// Moved echoes prioritized item texts.
func (pp *PrettyPrint) Moved(texts []string) {
	m := color.New(color.FgMagenta)
	for _, t := range texts {
		_, _ = m.Printf("  %s\n", t)
	}
}

// Removed echoes archived or deleted item texts.
func (pp *PrettyPrint) Removed(tasks []*todo.Task) {
	r := color.New(color.FgRed)
	for _, t := range tasks {
		_, _ = r.Printf("  %s\n", t.Text)
	}
}

// Lists prints a summary table of every list in the document.
func (pp *PrettyPrint) Lists(doc *todo.Document) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("LIST", "TASKS", "ITEMS")
	for _, l := range doc.Lists() {
		table.AddRow(l.Name, fmt.Sprintf("%d", l.TaskCount()), fmt.Sprintf("%d", l.ItemCount()))
	}
	fmt.Println(table)
}

// NumberedRows flattens a list into display rows, numbering tasks from 1
// and lettering subtasks from a.
func NumberedRows(list *todo.List) []Line {
	var rows []Line
	for i, t := range list.Tasks {
		rows = append(rows, TaskLine(i+1, t.Text))
		for j, s := range t.Subtasks {
			rows = append(rows, SubtaskLine(i+1, j, s.Text))
		}
	}
	return rows
}

// FilteredRows keeps tasks whose text contains the filter
// (case-insensitive) along with all their subtasks, and tasks with a
// matching subtask along with just the matching subtasks.
func FilteredRows(list *todo.List, filter string) []Line {
	needle := strings.ToLower(filter)
	var rows []Line
	for i, t := range list.Tasks {
		taskMatches := strings.Contains(strings.ToLower(t.Text), needle)

		var matching []int
		for j, s := range t.Subtasks {
			if strings.Contains(strings.ToLower(s.Text), needle) {
				matching = append(matching, j)
			}
		}

		switch {
		case taskMatches:
			rows = append(rows, TaskLine(i+1, t.Text))
			for j, s := range t.Subtasks {
				rows = append(rows, SubtaskLine(i+1, j, s.Text))
			}
		case len(matching) > 0:
			rows = append(rows, TaskLine(i+1, t.Text))
			for _, j := range matching {
				rows = append(rows, SubtaskLine(i+1, j, t.Subtasks[j].Text))
			}
		}
	}
	return rows
}
