package sortedset

import "fmt"

/*
Remarks:
--------

- A nil *node is the empty tree. Methods which make sense for the empty tree
  accept a nil receiver.

- Nodes start out unfrozen. An unfrozen node is owned by exactly one builder
  or by the operation which created it, and may be changed in place.
  Publishing a tree freezes it; frozen nodes are shared between sets and
  builders and are copied on write (see mutable()).

- A frozen node has frozen children only. freeze() relies on this to stop at
  subtrees published earlier.
*/

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // height of the subtree, 1 for a leaf
	count  int // number of nodes in the subtree
	frozen bool
}

func newLeaf[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1, count: 1}
}

func (n *node[T]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("%v(h=%d,#=%d)", n.value, n.height, n.count)
}

func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return n.count
}

func (n *node[T]) depth() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) balanceFactor() int {
	return n.left.depth() - n.right.depth()
}

// mutable returns n itself if n is unfrozen, otherwise an unfrozen copy.
func (n *node[T]) mutable() *node[T] {
	if !n.frozen {
		return n
	}
	cow := *n
	cow.frozen = false
	return &cow
}

// update recalculates the cached height and count of an unfrozen node.
func (n *node[T]) update() *node[T] {
	assertThat(!n.frozen, "attempt to update frozen node %v", n)
	n.height = 1 + max(n.left.depth(), n.right.depth())
	n.count = 1 + n.left.size() + n.right.size()
	return n
}

func (n *node[T]) freeze() {
	if n == nil || n.frozen {
		return
	}
	n.left.freeze()
	n.right.freeze()
	n.frozen = true
}

// --- Rotations -------------------------------------------------------------

// rotateLeft lifts the right child of n into n's position.
func (n *node[T]) rotateLeft() *node[T] {
	cow := n.mutable()
	r := cow.right.mutable()
	cow.right = r.left
	r.left = cow.update()
	return r.update()
}

// rotateRight lifts the left child of n into n's position.
func (n *node[T]) rotateRight() *node[T] {
	cow := n.mutable()
	l := cow.left.mutable()
	cow.left = l.right
	l.right = cow.update()
	return l.update()
}

// rebalance restores the AVL property for an updated, unfrozen node whose
// children are balanced and differ in height by at most 2.
func (n *node[T]) rebalance() *node[T] {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

// leftmost returns the smallest node of a subtree, or nil.
func (n *node[T]) leftmost() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the largest node of a subtree, or nil.
func (n *node[T]) rightmost() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
