package sortedset

import (
	"iter"

	"github.com/npillmayer/immutable/compare"
)

// Builder is a mutable sorted set for batches of edits.
//
// A builder shares the nodes of the set it has been created from. Edits copy
// shared nodes on first write and change the builder's own nodes in place, so
// a series of edits does not re-allocate the same paths over and over.
// No set observes the intermediate states of a builder.
//
// A builder must not be used from more than one goroutine at a time.
type Builder[T any] struct {
	comparer *compare.Comparer[T]
	root     *node[T]
	origin   *Set[T] // last snapshot, returned by ToImmutable if nothing changed
	version  int     // incremented on every effective change
}

// NewBuilder returns an empty builder ordered by c.
func NewBuilder[T any](c *compare.Comparer[T]) *Builder[T] {
	return EmptyWith(c).ToBuilder()
}

// ToImmutable returns a set with the builder's current elements. If nothing
// changed since the builder was created or since the last call, the set
// returned then is returned again.
//
// The builder's nodes become shared with the returned set; later edits of
// the builder copy them.
func (b *Builder[T]) ToImmutable() *Set[T] {
	if b.origin == nil || b.origin.root != b.root || b.origin.comparer != b.comparer {
		tracer().Debugf("builder: publishing snapshot of %d elements", b.root.size())
		b.origin = wrap(b.comparer, b.root)
	}
	return b.origin
}

func (b *Builder[T]) replace(root *node[T], changed bool) bool {
	if !changed {
		return false
	}
	b.root = root
	b.version++
	return true
}

// --- Properties ------------------------------------------------------------

// Count returns the number of elements.
func (b *Builder[T]) Count() int {
	return b.root.size()
}

// Comparer returns the current order of the builder.
func (b *Builder[T]) Comparer() *compare.Comparer[T] {
	return b.comparer
}

// SetComparer re-sorts the builder's elements under c. Elements which are
// equal under c collapse into the one which comes first in the current order.
func (b *Builder[T]) SetComparer(c *compare.Comparer[T]) {
	assertThat(c != nil, "builder needs a comparer")
	if c == b.comparer {
		return
	}
	tracer().Debugf("builder: re-sorting %d elements from %s to %s", b.Count(), b.comparer, c)
	b.comparer = c
	b.root = rebuild(b.root, c)
	b.version++
}

// --- Lookup ----------------------------------------------------------------

// Contains is true if the builder holds an element equal to value.
func (b *Builder[T]) Contains(value T) bool {
	return lookup(b.root, value, b.comparer) != nil
}

// TryGetValue returns the element stored in the builder which is equal to value.
func (b *Builder[T]) TryGetValue(value T) (T, bool) {
	if n := lookup(b.root, value, b.comparer); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// IndexOf returns the sorted position of value, or the bitwise complement of
// its insertion position if value is not contained.
func (b *Builder[T]) IndexOf(value T) int {
	found, rank := search(b.root, value, b.comparer)
	if !found {
		return ^rank
	}
	return rank
}

// At returns the element at sorted position index.
func (b *Builder[T]) At(index int) (T, error) {
	if index < 0 || index >= b.Count() {
		var zero T
		return zero, outOfRange(index, b.Count())
	}
	return selectAt(b.root, index).value, nil
}

// UnsafeItemRef returns a pointer to the element stored at sorted position
// index. See Set.UnsafeItemRef for the implications of writing through it.
func (b *Builder[T]) UnsafeItemRef(index int) (*T, error) {
	if index < 0 || index >= b.Count() {
		return nil, outOfRange(index, b.Count())
	}
	return &selectAt(b.root, index).value, nil
}

// Min returns the smallest element, or the zero value of T if empty.
func (b *Builder[T]) Min() T {
	if n := b.root.leftmost(); n != nil {
		return n.value
	}
	var zero T
	return zero
}

// Max returns the largest element, or the zero value of T if empty.
func (b *Builder[T]) Max() T {
	if n := b.root.rightmost(); n != nil {
		return n.value
	}
	var zero T
	return zero
}

// --- Iteration -------------------------------------------------------------

// All returns the elements in ascending order. Changing the builder while
// ranging over it panics with ErrCollectionModified.
func (b *Builder[T]) All() iter.Seq[T] {
	return traverse(b.root, false, b)
}

// Reverse returns the elements in descending order.
func (b *Builder[T]) Reverse() iter.Seq[T] {
	return traverse(b.root, true, b)
}

// Enumerator returns an enumerator positioned before the smallest element.
// It fails with ErrCollectionModified once the builder changes.
func (b *Builder[T]) Enumerator() Enumerator[T] {
	return newEnumerator(b.root, false, b)
}

// ToSlice returns the elements in ascending order.
func (b *Builder[T]) ToSlice() []T {
	items := make([]T, 0, b.Count())
	for v := range ascending(b.root) {
		items = append(items, v)
	}
	return items
}

// --- Modification ----------------------------------------------------------

// Add inserts value, reporting false if an equal element was present.
func (b *Builder[T]) Add(value T) bool {
	return b.replace(insert(b.root, value, b.comparer))
}

// Remove deletes value, reporting false if it was absent.
func (b *Builder[T]) Remove(value T) bool {
	return b.replace(remove(b.root, value, b.comparer))
}

// Clear removes all elements.
func (b *Builder[T]) Clear() {
	b.replace(nil, b.root != nil)
}

// UnionWith adds every element of other.
func (b *Builder[T]) UnionWith(other Elements[T]) {
	if o, ok := other.(*Builder[T]); ok && o == b {
		return
	}
	b.replace(insertAll(b.root, b.snapshot(other), b.comparer))
}

// ExceptWith removes every element of other.
func (b *Builder[T]) ExceptWith(other Elements[T]) {
	if o, ok := other.(*Builder[T]); ok && o == b {
		b.Clear()
		return
	}
	b.replace(removeAll(b.root, b.snapshot(other), b.comparer))
}

// SymmetricExceptWith keeps the elements contained either in the builder or
// in other, but not in both.
func (b *Builder[T]) SymmetricExceptWith(other Elements[T]) {
	items := sortedDistinct(b.snapshot(other), b.comparer)
	b.replace(symmetricExcept(b.root, items, b.comparer))
}

// IntersectWith removes every element not contained in other.
func (b *Builder[T]) IntersectWith(other Elements[T]) {
	root := retainAll(b.root, b.snapshot(other), b.comparer)
	b.replace(root, root.size() != b.Count())
}

// snapshot returns the elements of other. If other is the builder itself, its
// current elements are copied first, as edits would change them underway.
func (b *Builder[T]) snapshot(other Elements[T]) iter.Seq[T] {
	if o, ok := other.(*Builder[T]); ok && o == b {
		return Values(b.ToSlice()...).All()
	}
	return other.All()
}
