package sortedset

import "iter"

// List is a read-only, fixed-size view of a set as a list of its elements in
// sorted order. Every mutator fails with ErrUnsupported.
type List[T any] struct {
	set *Set[T]
}

// AsList returns a list view of s.
func (s *Set[T]) AsList() List[T] {
	return List[T]{set: s}
}

// Len returns the number of elements.
func (l List[T]) Len() int { return l.set.Count() }

// At returns the element at position index.
func (l List[T]) At(index int) (T, error) { return l.set.At(index) }

// IndexOf returns the position of value, or -1 if value is not contained.
func (l List[T]) IndexOf(value T) int {
	if i := l.set.IndexOf(value); i >= 0 {
		return i
	}
	return -1
}

// Contains is true if value is an element of the list.
func (l List[T]) Contains(value T) bool { return l.set.Contains(value) }

// All returns the elements in list order.
func (l List[T]) All() iter.Seq[T] { return l.set.All() }

// IsReadOnly is always true.
func (l List[T]) IsReadOnly() bool { return true }

// IsFixedSize is always true.
func (l List[T]) IsFixedSize() bool { return true }

func (l List[T]) Add(T) error { return unsupported("add") }
func (l List[T]) Insert(int, T) error { return unsupported("insert") }
func (l List[T]) Set(int, T) error { return unsupported("set") }
func (l List[T]) Remove(T) error { return unsupported("remove") }
func (l List[T]) RemoveAt(int) error { return unsupported("remove at") }
func (l List[T]) Clear() error { return unsupported("clear") }
