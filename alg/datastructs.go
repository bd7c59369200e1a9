package alg

// Stack is a LIFO over a backing slice.
type Stack[T any] struct {
	Array []T
}

func (s *Stack[T]) Push(val T) {
	s.Array = append(s.Array, val)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.Size() == 0 {
		return zero, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

// Index returns the element index positions below the top.
func (s *Stack[T]) Index(index int) (T, bool) {
	var zero T
	if index < 0 || index >= s.Size() {
		return zero, false
	}
	return s.Array[len(s.Array)-1-index], true
}

func (s *Stack[T]) Peek() (T, bool) {
	return s.Index(0)
}

func (s *Stack[T]) Size() int {
	return len(s.Array)
}

func NewStack[T any](size int) *Stack[T] {
	return &Stack[T]{make([]T, 0, size)}
}
