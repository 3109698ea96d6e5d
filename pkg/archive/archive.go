// Package archive models the archive store: per-list, per-day groupings of
// completed tasks. Like pkg/todo it is pure text-in, text-out; the caller
// supplies the calendar day and performs all file I/O.
package archive

import "tableflip.dev/ldr/pkg/todo"

// Section is one calendar day's worth of archived tasks for a list, newest
// archived last within the day.
type Section struct {
	Date  string // YYYY-MM-DD
	Tasks []*todo.Task
}

// ListArchive collects a single list's sections, newest day first.
type ListArchive struct {
	Name     string
	Sections []*Section
}

// File is the whole archive: one ListArchive per list, in first-use order.
type File struct {
	lists []*ListArchive
}

// New returns an empty archive.
func New() *File {
	return &File{}
}

// Lists returns the per-list archives in first-use order.
func (f *File) Lists() []*ListArchive {
	return f.lists
}

// List returns the archive block for the named list, or nil.
func (f *File) List(name string) *ListArchive {
	for _, l := range f.lists {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (f *File) getOrCreate(name string) *ListArchive {
	if l := f.List(name); l != nil {
		return l
	}
	l := &ListArchive{Name: name}
	f.lists = append(f.lists, l)
	return l
}

// IsEmpty reports whether the archive holds no sections at all.
func (f *File) IsEmpty() bool {
	for _, l := range f.lists {
		if len(l.Sections) > 0 {
			return false
		}
	}
	return true
}

// Add appends tasks to the named list's section for the given day, in the
// order given. A second archive on the same day appends to the existing
// section; a new day opens a fresh section at the front, keeping sections
// newest-first.
func (f *File) Add(list, date string, tasks []*todo.Task) {
	if len(tasks) == 0 {
		return
	}
	l := f.getOrCreate(list)
	for _, s := range l.Sections {
		if s.Date == date {
			s.Tasks = append(s.Tasks, tasks...)
			return
		}
	}
	section := &Section{Date: date, Tasks: append([]*todo.Task(nil), tasks...)}
	l.Sections = append([]*Section{section}, l.Sections...)
}
