// Package ebnferr defines the error types raised while reading and
// analyzing a grammar source file.
package ebnferr

import (
	"fmt"
	"sort"
)

// Position is a source location. Row and Col are 1-based; a Row of 0
// means the error has no associated source location, and
// SpecError.Error then omits the location prefix.
type Position struct {
	Row int
	Col int
}

// SpecError is a single diagnostic produced while reading a grammar.
type SpecError struct {
	Cause error
	Pos   Position
}

func (e *SpecError) Error() string {
	if e.Pos.Row == 0 {
		return fmt.Sprintf("error: %v", e.Cause)
	}
	return fmt.Sprintf("%v:%v: error: %v", e.Pos.Row, e.Pos.Col, e.Cause)
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

// SpecErrors is a collected, sortable list of SpecError. Readers
// accumulate errors into this list rather than failing on the first
// one, so that a single invocation reports everything wrong with a
// grammar at once.
type SpecErrors []*SpecError

func (es SpecErrors) Error() string {
	var b []byte
	for _, e := range es {
		b = append(b, e.Error()...)
		b = append(b, '\n')
	}
	return string(b)
}

// Sorted returns a copy of es ordered by (Row, Col).
func (es SpecErrors) Sorted() SpecErrors {
	sorted := make(SpecErrors, len(es))
	copy(sorted, es)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return sorted
}
