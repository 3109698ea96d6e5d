package archive

import (
	"strings"

	"tableflip.dev/ldr/pkg/todo"
)

// Parse converts archive text into a File.
//
// The grammar mirrors the active-list format with one extra layer:
// "## Name" opens a list block and "### YYYY-MM-DD" opens a day section
// inside it. Sections before the first list header belong to Default.
// Task lines keep both checkbox states, since everything in the archive is
// done. Blank and unrecognized lines are skipped; task lines outside any
// day section are skipped with them. Orphan subtasks and deep nesting are
// rejected the same way pkg/todo rejects them.
func Parse(content string) (*File, error) {
	f := New()
	current := f.getOrCreate(todo.DefaultList)

	var section *Section
	var task *todo.Task

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}

		if date, ok := strings.CutPrefix(line, "### "); ok {
			section = &Section{Date: strings.TrimSpace(date)}
			current.Sections = append(current.Sections, section)
			task = nil
			continue
		}
		if name, ok := strings.CutPrefix(line, "## "); ok {
			current = f.getOrCreate(strings.TrimSpace(name))
			section = nil
			task = nil
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		text, ok := cutTask(line[indent:])
		if !ok {
			continue
		}

		switch {
		case indent == 0:
			if section == nil {
				continue
			}
			task = todo.NewTask(text)
			section.Tasks = append(section.Tasks, task)
		case indent == 2:
			if task == nil {
				return nil, &todo.OrphanSubtaskError{Line: i + 1, Text: trimmed}
			}
			task.AddSubtask(text)
		case indent > 2:
			return nil, &todo.NestingError{Line: i + 1, Text: trimmed}
		}
	}

	return f, nil
}

func cutTask(s string) (string, bool) {
	if text, ok := strings.CutPrefix(s, "- [x] "); ok {
		return text, true
	}
	if text, ok := strings.CutPrefix(s, "- [ ] "); ok {
		return text, true
	}
	return "", false
}
