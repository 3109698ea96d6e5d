package todo

// DefaultList is the always-present list used when no list is named.
const DefaultList = "Default"

// List is a named, ordered run of tasks. Names are unique within a document
// and case-sensitive.
type List struct {
	Name  string
	Tasks []*Task
}

// NewList returns an empty list with the given name.
func NewList(name string) *List {
	return &List{Name: name}
}

// TaskCount returns the number of tasks in the list.
func (l *List) TaskCount() int {
	return len(l.Tasks)
}

// IsEmpty reports whether the list holds no tasks.
func (l *List) IsEmpty() bool {
	return len(l.Tasks) == 0
}

// ItemCount returns tasks plus subtasks.
func (l *List) ItemCount() int {
	n := 0
	for _, t := range l.Tasks {
		n += 1 + t.SubtaskCount()
	}
	return n
}

// Document is a collection of named lists in first-use order. The Default
// list always exists, even when empty.
type Document struct {
	lists []*List
}

// NewDocument returns a document containing only an empty Default list.
func NewDocument() *Document {
	return &Document{lists: []*List{NewList(DefaultList)}}
}

// Lists returns the lists in first-use order. Callers must not reorder the
// returned slice.
func (d *Document) Lists() []*List {
	return d.lists
}

// List returns the named list or a ListNotFoundError.
func (d *Document) List(name string) (*List, error) {
	for _, l := range d.lists {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, &ListNotFoundError{Name: name}
}

// GetOrCreate returns the named list, creating an empty one at the end of
// the first-use order when absent.
func (d *Document) GetOrCreate(name string) *List {
	if l, err := d.List(name); err == nil {
		return l
	}
	l := NewList(name)
	d.lists = append(d.lists, l)
	return l
}

// Default returns the Default list.
func (d *Document) Default() *List {
	l, _ := d.List(DefaultList)
	return l
}

// IsEmpty reports whether every list in the document is empty.
func (d *Document) IsEmpty() bool {
	for _, l := range d.lists {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}
