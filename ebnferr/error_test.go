package ebnferr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecErrorFormatting(t *testing.T) {
	cause := errors.New("expected ';'")

	withPos := &SpecError{Cause: cause, Pos: Position{Row: 3, Col: 7}}
	assert.Equal(t, "3:7: error: expected ';'", withPos.Error())

	noPos := &SpecError{Cause: cause}
	assert.Equal(t, "error: expected ';'", noPos.Error())
}

func TestSpecErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &SpecError{Cause: cause}
	require.ErrorIs(t, e, cause)
}

func TestSpecErrorsSorted(t *testing.T) {
	es := SpecErrors{
		{Cause: errors.New("c"), Pos: Position{Row: 2, Col: 1}},
		{Cause: errors.New("a"), Pos: Position{Row: 1, Col: 5}},
		{Cause: errors.New("b"), Pos: Position{Row: 1, Col: 2}},
	}
	sorted := es.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "b", sorted[0].Cause.Error())
	assert.Equal(t, "a", sorted[1].Cause.Error())
	assert.Equal(t, "c", sorted[2].Cause.Error())
}

func TestSpecErrorsError(t *testing.T) {
	es := SpecErrors{{Cause: errors.New("x"), Pos: Position{Row: 1, Col: 1}}}
	assert.Contains(t, es.Error(), "x")
}
