package alg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := NewStack[string](2)
	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack")

	s.Push("a")
	s.Push("b")
	s.Push("c")
	assert.Equal(t, 3, s.Size())

	top, _ := s.Peek()
	assert.Equal(t, "c", top)
	below, _ := s.Index(2)
	assert.Equal(t, "a", below)
	_, ok = s.Index(3)
	assert.False(t, ok)

	v, _ := s.Pop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, s.Size())
}
