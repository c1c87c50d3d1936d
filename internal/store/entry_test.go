package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_NoValidation(t *testing.T) {
	e := NewEntry("", "", "")
	assert.Equal(t, Entry{}, e)
}

func TestEntry_StructuralEquality(t *testing.T) {
	a := NewEntry("github", "alice", "p1")
	b := NewEntry("github", "alice", "p1")
	c := NewEntry("github", "alice", "p2")

	assert.True(t, a == b)
	assert.False(t, a == c)
}
