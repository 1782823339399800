package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLexeme(t *testing.T) {
	tests := []struct {
		lexeme string
		want   TYPE_NAME
		ok     bool
	}{
		{"d7krqm", TYPE_NUMBER, true},
		{"d7k34ry", TYPE_DECIMAL, true},
		{"d7kmslsl", TYPE_STRING, true},
		{"d7kmntq", TYPE_BOOL, true},
		{"d7kbdaya", "", false},
		{"x", "", false},
	}

	for _, tt := range tests {
		got, ok := FromLexeme(tt.lexeme)
		assert.Equal(t, tt.ok, ok, tt.lexeme)
		assert.Equal(t, tt.want, got, tt.lexeme)
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		name   string
		target TYPE_NAME
		source TYPE_NAME
		want   bool
	}{
		{"same type", TYPE_NUMBER, TYPE_NUMBER, true},
		{"number widens to decimal", TYPE_DECIMAL, TYPE_NUMBER, true},
		{"decimal does not narrow to number", TYPE_NUMBER, TYPE_DECIMAL, false},
		{"string to number", TYPE_NUMBER, TYPE_STRING, false},
		{"bool to string", TYPE_STRING, TYPE_BOOL, false},
		{"unknown source suppresses the check", TYPE_NUMBER, TYPE_UNKNOWN, true},
		{"unknown target suppresses the check", TYPE_UNKNOWN, TYPE_STRING, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assignable(tt.target, tt.source))
		})
	}
}

func TestWiden(t *testing.T) {
	assert.Equal(t, TYPE_NUMBER, Widen(TYPE_NUMBER, TYPE_NUMBER))
	assert.Equal(t, TYPE_DECIMAL, Widen(TYPE_NUMBER, TYPE_DECIMAL))
	assert.Equal(t, TYPE_DECIMAL, Widen(TYPE_DECIMAL, TYPE_NUMBER))
	assert.Equal(t, TYPE_DECIMAL, Widen(TYPE_DECIMAL, TYPE_DECIMAL))
}

func TestComparable(t *testing.T) {
	assert.True(t, Comparable(TYPE_NUMBER, TYPE_DECIMAL))
	assert.True(t, Comparable(TYPE_STRING, TYPE_STRING))
	assert.True(t, Comparable(TYPE_BOOL, TYPE_BOOL))
	assert.False(t, Comparable(TYPE_STRING, TYPE_NUMBER))
	assert.False(t, Comparable(TYPE_BOOL, TYPE_NUMBER))
	assert.False(t, Comparable(TYPE_VOID, TYPE_VOID))
	assert.True(t, Comparable(TYPE_UNKNOWN, TYPE_STRING))
}
