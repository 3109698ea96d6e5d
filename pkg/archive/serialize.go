package archive

import "strings"

// Serialize renders the archive canonically: list blocks in first-use
// order, each holding its day sections newest-first, tasks checked off.
// When Default is the only list its header is omitted, matching the
// active-list format. Re-parsing the output reproduces an equal archive.
func (f *File) Serialize() string {
	var b strings.Builder
	headerless := len(f.lists) == 1

	for i, l := range f.lists {
		if !headerless {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("## ")
			b.WriteString(l.Name)
			b.WriteString("\n")
		}
		for j, s := range l.Sections {
			if j > 0 || !headerless {
				b.WriteString("\n")
			}
			b.WriteString("### ")
			b.WriteString(s.Date)
			b.WriteString("\n")
			for _, t := range s.Tasks {
				b.WriteString("- [x] ")
				b.WriteString(t.Text)
				b.WriteString("\n")
				for _, st := range t.Subtasks {
					b.WriteString("  - [x] ")
					b.WriteString(st.Text)
					b.WriteString("\n")
				}
			}
		}
	}
	return b.String()
}
