package sortedset

import (
	"fmt"
	"testing"

	"github.com/npillmayer/immutable/compare"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

// --- Print tree ------------------------------------------------------------

func printTree[T any](root *node[T]) string {
	printer := tp.New()
	printNode(printer, root)
	return "\n" + printer.String()
}

func printNode[T any](printer tp.Tree, n *node[T]) {
	if n == nil {
		return
	}
	label := n.String()
	if n.frozen {
		label += " ❄"
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range []*node[T]{n.left, n.right} {
		if ch == nil {
			branch.AddNode("⊥")
		} else {
			printNode(branch, ch)
		}
	}
}

// --- Invariants ------------------------------------------------------------

// checkTree verifies order, cached heights and counts, AVL balance and the
// rule that frozen nodes have frozen children only.
func checkTree[T any](t *testing.T, root *node[T], c *compare.Comparer[T]) {
	t.Helper()
	var prev *T
	var walk func(n *node[T]) (int, int)
	walk = func(n *node[T]) (int, int) {
		if n == nil {
			return 0, 0
		}
		lh, lc := walk(n.left)
		if prev != nil {
			require.Less(t, c.Compare(*prev, n.value), 0, "order violated at %v:%s", n, printTree(root))
		}
		v := n.value
		prev = &v
		rh, rc := walk(n.right)
		require.Equal(t, 1+max(lh, rh), n.height, "wrong height at %v", n)
		require.Equal(t, 1+lc+rc, n.count, "wrong count at %v", n)
		require.LessOrEqual(t, lh-rh, 1, "left-heavy node %v:%s", n, printTree(root))
		require.LessOrEqual(t, rh-lh, 1, "right-heavy node %v:%s", n, printTree(root))
		if n.frozen {
			require.True(t, n.left == nil || n.left.frozen, "frozen node %v with unfrozen left child", n)
			require.True(t, n.right == nil || n.right.frozen, "frozen node %v with unfrozen right child", n)
		}
		return n.height, n.count
	}
	walk(root)
}

// checkFrozen verifies that a published tree is frozen throughout.
func checkFrozen[T any](t *testing.T, root *node[T]) {
	t.Helper()
	for _, n := range collectNodes(root) {
		require.True(t, n.frozen, "expected node %v to be frozen", n)
	}
}

func collectNodes[T any](root *node[T]) []*node[T] {
	if root == nil {
		return nil
	}
	nodes := []*node[T]{root}
	nodes = append(nodes, collectNodes(root.left)...)
	return append(nodes, collectNodes(root.right)...)
}

// sharedNodes counts the nodes of b which are also nodes of a.
func sharedNodes[T any](a, b *node[T]) int {
	inA := make(map[*node[T]]bool)
	for _, n := range collectNodes(a) {
		inA[n] = true
	}
	shared := 0
	for _, n := range collectNodes(b) {
		if inA[n] {
			shared++
		}
	}
	return shared
}

func tens(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = (i + 1) * 10
	}
	return xs
}

func rangeOf(from, to int) []int {
	xs := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		xs = append(xs, i)
	}
	return xs
}

func describe[T any](s *Set[T]) string {
	return fmt.Sprintf("set(#%d, %s) = %v", s.Count(), s.Comparer(), s)
}
