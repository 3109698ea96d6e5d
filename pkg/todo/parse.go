package todo

import "strings"

const (
	openPrefix = "- [ ] "
	donePrefix = "- [x] "

	subtaskIndent = 2
)

type lineKind int

const (
	lineOther lineKind = iota
	lineOpen
	lineDone
)

func cutCheckbox(s string) (string, lineKind) {
	if text, ok := strings.CutPrefix(s, openPrefix); ok {
		return text, lineOpen
	}
	if text, ok := strings.CutPrefix(s, donePrefix); ok {
		return text, lineDone
	}
	return "", lineOther
}

// Parse converts structured text into a Document.
//
// A "## Name" line opens a named list; lines before the first header belong
// to Default, so legacy single-list files parse without any header. Task
// lines use "- [ ] text"; checked-off tasks ("- [x]") are dropped together
// with their subtasks, since active lists hold only undone items. Subtask
// lines are indented exactly two spaces. Blank and unrecognized lines are
// skipped. A subtask with no task above it is an OrphanSubtaskError, and
// indentation deeper than one level is a NestingError.
//
// Empty input yields a document with an empty Default list, never an error.
func Parse(content string) (*Document, error) {
	doc := NewDocument()
	current := doc.Default()

	var task *Task // task receiving subtask lines
	dropped := false

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}

		if name, ok := strings.CutPrefix(line, "## "); ok {
			current = doc.GetOrCreate(strings.TrimSpace(name))
			task = nil
			dropped = false
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		text, kind := cutCheckbox(line[indent:])
		if kind == lineOther {
			// legacy tolerance: unknown lines are skipped
			continue
		}

		switch {
		case indent == 0:
			if kind == lineDone {
				task = nil
				dropped = true
				continue
			}
			task = NewTask(text)
			current.Tasks = append(current.Tasks, task)
			dropped = false
		case indent == subtaskIndent:
			if task == nil {
				if dropped {
					// subtasks follow their checked-off parent out
					continue
				}
				return nil, &OrphanSubtaskError{Line: i + 1, Text: trimmed}
			}
			if kind == lineDone {
				continue
			}
			task.AddSubtask(text)
		case indent > subtaskIndent:
			return nil, &NestingError{Line: i + 1, Text: trimmed}
		}
	}

	return doc, nil
}
