package sortedset

import (
	"iter"
	"slices"

	"github.com/npillmayer/immutable/compare"
)

/*
Tree algorithms work on (sub-)trees given by their root node. They never
change frozen nodes; changed paths are copied and the result links back to
every untouched subtree. Unfrozen nodes are changed in place. Results are
unfrozen and have to be frozen by the caller before being shared.
*/

// search returns whether value is contained in the tree, together with its
// rank. For a missing value, the rank is the position it would be inserted at.
func search[T any](root *node[T], value T, c *compare.Comparer[T]) (bool, int) {
	rank := 0
	for n := root; n != nil; {
		cmp := c.Compare(value, n.value)
		switch {
		case cmp == 0:
			return true, rank + n.left.size()
		case cmp < 0:
			n = n.left
		default:
			rank += n.left.size() + 1
			n = n.right
		}
	}
	return false, rank
}

// lookup returns the node holding an element equal to value, or nil.
func lookup[T any](root *node[T], value T, c *compare.Comparer[T]) *node[T] {
	n := root
	for n != nil {
		cmp := c.Compare(value, n.value)
		switch {
		case cmp == 0:
			return n
		case cmp < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// selectAt returns the node at sorted position index. Callers check bounds.
func selectAt[T any](root *node[T], index int) *node[T] {
	assertThat(index >= 0 && index < root.size(), "select index %d out of range", index)
	n := root
	for {
		l := n.left.size()
		switch {
		case index < l:
			n = n.left
		case index == l:
			return n
		default:
			index -= l + 1
			n = n.right
		}
	}
}

// insert returns a tree containing value. If an equal element is present,
// root is returned unchanged, together with false.
func insert[T any](root *node[T], value T, c *compare.Comparer[T]) (*node[T], bool) {
	path := make(slotPath[T], 0, root.depth())
	for n := root; n != nil; {
		cmp := c.Compare(value, n.value)
		if cmp == 0 {
			return root, false
		}
		path = append(path, slot[T]{node: n, left: cmp < 0})
		if cmp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return path.foldR(relink[T], newLeaf(value)), true
}

// remove returns a tree without value. If value is absent, root is returned
// unchanged, together with false.
func remove[T any](root *node[T], value T, c *compare.Comparer[T]) (*node[T], bool) {
	path := make(slotPath[T], 0, root.depth())
	n := root
	for n != nil {
		cmp := c.Compare(value, n.value)
		if cmp == 0 {
			break
		}
		path = append(path, slot[T]{node: n, left: cmp < 0})
		if cmp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return root, false
	}
	return path.foldR(relink[T], splice(n)), true
}

// splice returns the subtree of n with n taken out. A node with two children
// is replaced by its in-order successor, which is cut from the right subtree.
func splice[T any](n *node[T]) *node[T] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	spine := make(slotPath[T], 0, n.right.depth())
	succ := n.right
	for succ.left != nil {
		spine = append(spine, slot[T]{node: succ, left: true})
		succ = succ.left
	}
	right := spine.foldR(relink[T], succ.right)
	cow := succ.mutable()
	cow.left, cow.right = n.left, right
	return cow.update().rebalance()
}

// insertAll inserts every element of seq, reporting whether any was new.
func insertAll[T any](root *node[T], seq iter.Seq[T], c *compare.Comparer[T]) (*node[T], bool) {
	changed := false
	for v := range seq {
		var ok bool
		root, ok = insert(root, v, c)
		changed = changed || ok
	}
	return root, changed
}

// removeAll removes every element of seq, reporting whether any was present.
// Absent elements are skipped.
func removeAll[T any](root *node[T], seq iter.Seq[T], c *compare.Comparer[T]) (*node[T], bool) {
	changed := false
	for v := range seq {
		if root == nil {
			break
		}
		var ok bool
		root, ok = remove(root, v, c)
		changed = changed || ok
	}
	return root, changed
}

// retainAll builds a tree of the elements of root which are equal to an element
// of seq. Elements are taken from root, not from seq.
func retainAll[T any](root *node[T], seq iter.Seq[T], c *compare.Comparer[T]) *node[T] {
	var r *node[T]
	for v := range seq {
		if n := lookup(root, v, c); n != nil {
			r, _ = insert(r, n.value, c)
		}
	}
	return r
}

// symmetricExcept merges the ascending elements of root with the sorted and
// distinct elements of other, keeping those found in exactly one of them.
// If other is empty, root is returned unchanged, together with false.
func symmetricExcept[T any](root *node[T], other []T, c *compare.Comparer[T]) (*node[T], bool) {
	if len(other) == 0 {
		return root, false
	}
	merged := make([]T, 0, root.size()+len(other))
	i := 0
	for v := range ascending(root) {
		for i < len(other) && c.Compare(other[i], v) < 0 {
			merged = append(merged, other[i])
			i++
		}
		if i < len(other) && c.Compare(other[i], v) == 0 {
			i++
			continue
		}
		merged = append(merged, v)
	}
	merged = append(merged, other[i:]...)
	return fromSorted(merged), true
}

// rebuild re-sorts the elements of root under a new order. Elements equal
// under c collapse into the one coming first in the old order.
func rebuild[T any](root *node[T], c *compare.Comparer[T]) *node[T] {
	r, _ := insertAll(nil, ascending(root), c)
	return r
}

// fromSorted builds a balanced tree from strictly ascending elements.
func fromSorted[T any](items []T) *node[T] {
	if len(items) == 0 {
		return nil
	}
	mid := len(items) / 2
	n := &node[T]{value: items[mid]}
	n.left = fromSorted(items[:mid])
	n.right = fromSorted(items[mid+1:])
	return n.update()
}

// sortedDistinct collects seq in ascending order, dropping elements equal to
// an earlier one.
func sortedDistinct[T any](seq iter.Seq[T], c *compare.Comparer[T]) []T {
	items := slices.Collect(seq)
	slices.SortStableFunc(items, c.Compare)
	return slices.CompactFunc(items, c.Equal)
}

// ascending walks a tree in order without pooling, for internal bulk use.
func ascending[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*node[T], 0, root.depth())
		for n := root; n != nil; n = n.left {
			stack = append(stack, n)
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			for m := n.right; m != nil; m = m.left {
				stack = append(stack, m)
			}
		}
	}
}
