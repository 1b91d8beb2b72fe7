package sortedset

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with the side we descended to.
type slot[T any] struct {
	node *node[T]
	left bool
}

func (s slot[T]) String() string {
	if s.left {
		return "↙" + s.node.String()
	}
	return "↘" + s.node.String()
}

// relink copies the parent of a slot (if shared), links child into the side
// the path descended to, and rebalances the result.
func relink[T any](parent slot[T], child *node[T]) *node[T] {
	cow := parent.node.mutable()
	if parent.left {
		cow.left = child
	} else {
		cow.right = child
	}
	return cow.update().rebalance()
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path from a root towards a leaf.
type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

// foldR applies f to pairs (parent, child), starting at the bottom-most slot of
// the path with zero as the child. Every call returns the new subtree which
// becomes the child for the next slot upwards. If path is empty, zero will be
// returned, otherwise the result of the final call (the new root).
func (path slotPath[T]) foldR(f func(slot[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
