// Package ref parses user reference tokens like "1" or "2a" and resolves
// them into list coordinates.
package ref

import (
	"fmt"
	"strconv"

	"tableflip.dev/ldr/pkg/todo"
)

// Ref is a parsed reference token: a 1-based task ordinal and an optional
// subtask letter.
type Ref struct {
	Token   string
	Ordinal int
	Letter  rune // 0 when the token names a whole task
}

// IsSubtask reports whether the token carries a subtask letter.
func (r Ref) IsSubtask() bool {
	return r.Letter != 0
}

// Parse validates the token grammar: one or more digits, optionally
// followed by exactly one lowercase letter.
func Parse(token string) (Ref, error) {
	if token == "" {
		return Ref{}, &SyntaxError{Token: token, Reason: "empty reference"}
	}

	digits := ""
	letter := rune(0)
	for _, ch := range token {
		switch {
		case ch >= '0' && ch <= '9':
			if letter != 0 {
				return Ref{}, &SyntaxError{Token: token, Reason: "digits after the subtask letter"}
			}
			digits += string(ch)
		case ch >= 'a' && ch <= 'z':
			if digits == "" {
				return Ref{}, &SyntaxError{Token: token, Reason: "reference must start with a task number"}
			}
			if letter != 0 {
				return Ref{}, &SyntaxError{Token: token, Reason: "more than one subtask letter"}
			}
			letter = ch
		default:
			return Ref{}, &SyntaxError{Token: token, Reason: fmt.Sprintf("invalid character %q", ch)}
		}
	}

	ordinal, err := strconv.Atoi(digits)
	if err != nil {
		return Ref{}, &SyntaxError{Token: token, Reason: "invalid task number"}
	}

	return Ref{Token: token, Ordinal: ordinal, Letter: letter}, nil
}

// Resolve maps a batch of tokens to coordinates against the list's current
// state. It is a pure read pass: every token is parsed and bounds-checked
// before any caller mutation begins, so a failing batch leaves the document
// untouched. Exact duplicates are dropped, keeping the first occurrence.
func Resolve(list *todo.List, tokens []string) ([]todo.Coordinate, error) {
	coords := make([]todo.Coordinate, 0, len(tokens))
	seen := make(map[todo.Coordinate]bool)

	for _, token := range tokens {
		r, err := Parse(token)
		if err != nil {
			return nil, err
		}

		if r.Ordinal < 1 || r.Ordinal > list.TaskCount() {
			return nil, &TaskRangeError{Token: token, Ordinal: r.Ordinal, Count: list.TaskCount()}
		}

		c := todo.WholeTask(r.Ordinal - 1)
		if r.IsSubtask() {
			task := list.Tasks[r.Ordinal-1]
			sub := int(r.Letter - 'a')
			if sub >= task.SubtaskCount() {
				return nil, &SubtaskRangeError{
					Token:   token,
					Letter:  r.Letter,
					Ordinal: r.Ordinal,
					Count:   task.SubtaskCount(),
				}
			}
			c = todo.At(r.Ordinal-1, sub)
		}

		if seen[c] {
			continue
		}
		seen[c] = true
		coords = append(coords, c)
	}

	return coords, nil
}
