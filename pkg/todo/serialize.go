package todo

import "strings"

// Serialize renders the document in canonical form, the deterministic
// inverse of Parse: re-parsing the output reproduces an equal document.
//
// Lists appear in first-use order. When Default is the only list its header
// is omitted, keeping legacy single-list files headerless; otherwise every
// list gets a "## Name" header, Default included even when empty.
func (d *Document) Serialize() string {
	var b strings.Builder
	headerless := len(d.lists) == 1

	for i, l := range d.lists {
		if !headerless {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("## ")
			b.WriteString(l.Name)
			b.WriteString("\n")
		}
		writeTasks(&b, l.Tasks, openPrefix)
	}
	return b.String()
}

func writeTasks(b *strings.Builder, tasks []*Task, prefix string) {
	for _, t := range tasks {
		b.WriteString(prefix)
		b.WriteString(t.Text)
		b.WriteString("\n")
		for _, s := range t.Subtasks {
			b.WriteString("  ")
			b.WriteString(prefix)
			b.WriteString(s.Text)
			b.WriteString("\n")
		}
	}
}
