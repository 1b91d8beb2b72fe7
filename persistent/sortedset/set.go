package sortedset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/immutable/compare"
	"github.com/npillmayer/immutable/maybe"
)

// Set is an immutable sorted set. Sets are handled by pointer; a set returned
// from an operation which did not change anything is the receiver itself.
//
// The zero value is not usable, create sets with Empty, EmptyWith, Of, New or
// Collect.
type Set[T any] struct {
	comparer *compare.Comparer[T]
	root     *node[T]
}

// Elements is a source of elements for bulk operations. *Set and *Builder
// implement it; plain values are adapted with Values or Seq.
type Elements[T any] interface {
	All() iter.Seq[T]
}

type values[T any] []T

func (v values[T]) All() iter.Seq[T] {
	return slices.Values(v)
}

// Values adapts a list of values to Elements.
func Values[T any](xs ...T) Elements[T] {
	return values[T](xs)
}

type sequence[T any] iter.Seq[T]

func (s sequence[T]) All() iter.Seq[T] {
	return iter.Seq[T](s)
}

// Seq adapts an iterator to Elements.
func Seq[T any](seq iter.Seq[T]) Elements[T] {
	return sequence[T](seq)
}

// --- Construction ----------------------------------------------------------

// Empty returns an empty set ordered by the natural order of T.
func Empty[T cmp.Ordered]() *Set[T] {
	return EmptyWith(compare.Default[T]())
}

// EmptyWith returns an empty set ordered by c.
func EmptyWith[T any](c *compare.Comparer[T]) *Set[T] {
	assertThat(c != nil, "set needs a comparer")
	return &Set[T]{comparer: c}
}

// Of creates a set of items, ordered by the natural order of T.
// Duplicates are dropped.
func Of[T cmp.Ordered](items ...T) *Set[T] {
	return New(compare.Default[T](), items...)
}

// New creates a set of items ordered by c. Of items equal under c, the first
// one is kept.
func New[T any](c *compare.Comparer[T], items ...T) *Set[T] {
	return Collect(c, slices.Values(items))
}

// Collect creates a set from the elements of seq, ordered by c. Of elements
// equal under c, the first one is kept.
func Collect[T any](c *compare.Comparer[T], seq iter.Seq[T]) *Set[T] {
	return EmptyWith(c).Union(Seq(seq))
}

// wrap publishes a tree as a set, freezing its nodes.
func wrap[T any](c *compare.Comparer[T], root *node[T]) *Set[T] {
	root.freeze()
	return &Set[T]{comparer: c, root: root}
}

// with returns s itself if root did not change, otherwise a new set.
func (s *Set[T]) with(root *node[T], changed bool) *Set[T] {
	if !changed || root == s.root {
		return s
	}
	return wrap(s.comparer, root)
}

// --- Properties ------------------------------------------------------------

// Count returns the number of elements.
func (s *Set[T]) Count() int {
	return s.root.size()
}

// IsEmpty is true for a set without elements.
func (s *Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Comparer returns the order of the set.
func (s *Set[T]) Comparer() *compare.Comparer[T] {
	return s.comparer
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	for v := range ascending(s.root) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", v))
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}

// --- Lookup ----------------------------------------------------------------

// Contains is true if s holds an element equal to value under the set's comparer.
func (s *Set[T]) Contains(value T) bool {
	return lookup(s.root, value, s.comparer) != nil
}

// TryGetValue returns the element stored in s which is equal to value.
// This may differ from value for comparers which consider distinct values equal.
func (s *Set[T]) TryGetValue(value T) (T, bool) {
	if n := lookup(s.root, value, s.comparer); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// IndexOf returns the sorted position of value. If value is not contained,
// the bitwise complement of the position it would be inserted at is returned,
// which is always negative.
func (s *Set[T]) IndexOf(value T) int {
	found, rank := search(s.root, value, s.comparer)
	if !found {
		return ^rank
	}
	return rank
}

// At returns the element at sorted position index.
func (s *Set[T]) At(index int) (T, error) {
	if index < 0 || index >= s.Count() {
		var zero T
		return zero, outOfRange(index, s.Count())
	}
	return selectAt(s.root, index).value, nil
}

// UnsafeItemRef returns a pointer to the element stored at sorted position index.
//
// The element lives in a node which may be shared with other sets and builders.
// Writing through the pointer changes the element for all of them, and writing
// a value which does not sort into the same position breaks every one of them.
// Clients use this to avoid copying large elements and take full responsibility
// for keeping the order intact.
func (s *Set[T]) UnsafeItemRef(index int) (*T, error) {
	if index < 0 || index >= s.Count() {
		return nil, outOfRange(index, s.Count())
	}
	return &selectAt(s.root, index).value, nil
}

// Min returns the smallest element, or the zero value of T for an empty set.
func (s *Set[T]) Min() T {
	if n := s.root.leftmost(); n != nil {
		return n.value
	}
	var zero T
	return zero
}

// Max returns the largest element, or the zero value of T for an empty set.
func (s *Set[T]) Max() T {
	if n := s.root.rightmost(); n != nil {
		return n.value
	}
	var zero T
	return zero
}

// First returns the smallest element, if any.
func (s *Set[T]) First() maybe.Maybe[T] {
	if n := s.root.leftmost(); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[T]()
}

// Last returns the largest element, if any.
func (s *Set[T]) Last() maybe.Maybe[T] {
	if n := s.root.rightmost(); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[T]()
}

// --- Iteration -------------------------------------------------------------

// All returns the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return traverse(s.root, false, nil)
}

// Reverse returns the elements in descending order. The sequence is lazy and
// may be ranged over repeatedly; every range walks the tree again.
func (s *Set[T]) Reverse() iter.Seq[T] {
	return traverse(s.root, true, nil)
}

// Enumerator returns an enumerator positioned before the smallest element.
// Clients have to call Dispose when done.
func (s *Set[T]) Enumerator() Enumerator[T] {
	return newEnumerator(s.root, false, nil)
}

// ToSlice returns the elements in ascending order.
func (s *Set[T]) ToSlice() []T {
	items := make([]T, 0, s.Count())
	for v := range ascending(s.root) {
		items = append(items, v)
	}
	return items
}

// --- Modification ----------------------------------------------------------

// Add returns a set with value added. If an equal element is present,
// s is returned.
func (s *Set[T]) Add(value T) *Set[T] {
	root, changed := insert(s.root, value, s.comparer)
	return s.with(root, changed)
}

// Remove returns a set without value. If value is absent, s is returned.
func (s *Set[T]) Remove(value T) *Set[T] {
	root, changed := remove(s.root, value, s.comparer)
	return s.with(root, changed)
}

// Clear returns an empty set with the same order.
func (s *Set[T]) Clear() *Set[T] {
	if s.IsEmpty() {
		return s
	}
	return EmptyWith(s.comparer)
}

// Union returns a set with every element of other added.
//
// If other is a set (or builder) with the same comparer, the elements of the
// smaller operand are inserted into the larger one. Either operand is returned
// unchanged if the other one contributes no new elements.
func (s *Set[T]) Union(other Elements[T]) *Set[T] {
	if o, ok := s.sameOrder(other); ok {
		switch {
		case o.IsEmpty():
			return s
		case s.IsEmpty():
			return o
		case o.Count() > s.Count():
			tracer().Debugf("union: inserting %d elements into larger operand of %d", s.Count(), o.Count())
			return o.unionIncremental(ascending(s.root))
		}
		return s.unionIncremental(ascending(o.root))
	}
	if s.IsEmpty() {
		return s.refill(other.All())
	}
	return s.unionIncremental(other.All())
}

func (s *Set[T]) unionIncremental(seq iter.Seq[T]) *Set[T] {
	root, changed := insertAll(s.root, seq, s.comparer)
	return s.with(root, changed)
}

// refill builds a balanced tree from scratch instead of inserting one by one.
func (s *Set[T]) refill(seq iter.Seq[T]) *Set[T] {
	items := sortedDistinct(seq, s.comparer)
	if len(items) == 0 {
		return s
	}
	tracer().Debugf("union: refilling empty set with %d elements", len(items))
	return wrap(s.comparer, fromSorted(items))
}

// Except returns a set without the elements of other. Elements of other not
// contained in s are ignored; if none is contained, s is returned.
func (s *Set[T]) Except(other Elements[T]) *Set[T] {
	root, changed := removeAll(s.root, other.All(), s.comparer)
	return s.with(root, changed)
}

// SymmetricExcept returns a set of the elements contained either in s or in
// other, but not in both.
func (s *Set[T]) SymmetricExcept(other Elements[T]) *Set[T] {
	o := s.distinct(other)
	root, changed := symmetricExcept(s.root, o.ToSlice(), s.comparer)
	return s.with(root, changed)
}

// Intersect returns a set of the elements of s which are contained in other.
// If every element of s is contained in other, s is returned.
func (s *Set[T]) Intersect(other Elements[T]) *Set[T] {
	root := retainAll(s.root, other.All(), s.comparer)
	return s.with(root, root.size() != s.Count())
}

// WithComparer returns a set ordered by c. Elements which are equal under c
// collapse into the one which comes first in the current order; changing back
// to the previous comparer will not restore them. If c is the set's comparer,
// s is returned.
func (s *Set[T]) WithComparer(c *compare.Comparer[T]) *Set[T] {
	assertThat(c != nil, "set needs a comparer")
	if c == s.comparer {
		return s
	}
	if s.IsEmpty() {
		return EmptyWith(c)
	}
	tracer().Debugf("re-sorting %d elements from %s to %s", s.Count(), s.comparer, c)
	return wrap(c, rebuild(s.root, c))
}

// ToBuilder returns a builder starting with the elements of s.
func (s *Set[T]) ToBuilder() *Builder[T] {
	return &Builder[T]{comparer: s.comparer, root: s.root, origin: s}
}

// --- Set relations ---------------------------------------------------------

// SetEquals is true if s and other contain the same elements, ignoring
// duplicates in other.
func (s *Set[T]) SetEquals(other Elements[T]) bool {
	if o, ok := other.(*Set[T]); ok && o == s {
		return true
	}
	o := s.distinct(other)
	return o.Count() == s.Count() && s.containsAll(ascending(o.root))
}

// IsSubsetOf is true if every element of s is contained in other.
func (s *Set[T]) IsSubsetOf(other Elements[T]) bool {
	if s.IsEmpty() {
		return true
	}
	o := s.distinct(other)
	return o.Count() >= s.Count() && o.containsAll(ascending(s.root))
}

// IsProperSubsetOf is true if s is a subset of other and other contains
// additional elements.
func (s *Set[T]) IsProperSubsetOf(other Elements[T]) bool {
	o := s.distinct(other)
	return o.Count() > s.Count() && o.containsAll(ascending(s.root))
}

// IsSupersetOf is true if every element of other is contained in s.
func (s *Set[T]) IsSupersetOf(other Elements[T]) bool {
	return s.containsAll(other.All())
}

// IsProperSupersetOf is true if s is a superset of other and s contains
// additional elements.
func (s *Set[T]) IsProperSupersetOf(other Elements[T]) bool {
	if s.IsEmpty() {
		return false
	}
	o := s.distinct(other)
	return o.Count() < s.Count() && s.containsAll(ascending(o.root))
}

// Overlaps is true if s and other share at least one element.
func (s *Set[T]) Overlaps(other Elements[T]) bool {
	if s.IsEmpty() {
		return false
	}
	for v := range other.All() {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

func (s *Set[T]) containsAll(seq iter.Seq[T]) bool {
	for v := range seq {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// sameOrder returns other as a set, if it is a set or builder ordered by the
// very same comparer as s.
func (s *Set[T]) sameOrder(other Elements[T]) (*Set[T], bool) {
	switch o := other.(type) {
	case *Set[T]:
		if o != nil && o.comparer == s.comparer {
			return o, true
		}
	case *Builder[T]:
		if o != nil && o.comparer == s.comparer {
			return o.ToImmutable(), true
		}
	}
	return nil, false
}

// distinct returns the elements of other as a set ordered like s.
func (s *Set[T]) distinct(other Elements[T]) *Set[T] {
	if o, ok := s.sameOrder(other); ok {
		return o
	}
	return Collect(s.comparer, other.All())
}
