package sortedset

import (
	"fmt"
	"testing"

	"github.com/npillmayer/immutable/compare"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// probe is an element type no other test uses, so its stack pool is private
// to the tests in this file.
type probe struct{ key int }

var probeOrder = compare.By("probe", func(p probe) int { return p.key }, compare.Default[int]())

func probes(keys ...int) *Set[probe] {
	items := make([]probe, len(keys))
	for i, k := range keys {
		items[i] = probe{k}
	}
	return New(probeOrder, items...)
}

func drain[T any](t *testing.T, e *Enumerator[T]) []T {
	var items []T
	for {
		ok, err := e.MoveNext()
		require.NoError(t, err)
		if !ok {
			return items
		}
		v, err := e.Current()
		require.NoError(t, err)
		items = append(items, v)
	}
}

func TestEnumeratorWalksInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.sortedset")
	defer teardown()
	//
	set := Of(rangeOf(1, 100)...)
	e := set.Enumerator()
	defer e.Dispose()
	assert.Equal(t, rangeOf(1, 100), drain(t, &e))
	ok, err := e.MoveNext()
	assert.NoError(t, err)
	assert.False(t, ok, "expected exhausted enumerator to stay exhausted")
	_, err = e.Current()
	assert.ErrorIs(t, err, ErrNoCurrent)
}

func TestEnumeratorOverEmptySet(t *testing.T) {
	e := Empty[int]().Enumerator()
	defer e.Dispose()
	ok, err := e.MoveNext()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEnumeratorReset(t *testing.T) {
	set := Of(5, 3, 8)
	e := set.Enumerator()
	defer e.Dispose()
	e.MoveNext()
	e.MoveNext()
	require.NoError(t, e.Reset())
	_, err := e.Current()
	assert.ErrorIs(t, err, ErrNoCurrent, "expected Reset to position before the first element")
	assert.Equal(t, []int{3, 5, 8}, drain(t, &e))
	require.NoError(t, e.Reset())
	assert.Equal(t, []int{3, 5, 8}, drain(t, &e))
}

func TestEnumeratorCurrentBeforeMoveNext(t *testing.T) {
	e := probes(1, 2).Enumerator()
	defer e.Dispose()
	_, err := e.Current()
	assert.ErrorIs(t, err, ErrNoCurrent)
}

func TestEnumeratorDisposeInvalidatesCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.sortedset")
	defer teardown()
	//
	set := probes(1, 2, 3)
	e := set.Enumerator()
	e.MoveNext()
	copied := e
	e.Dispose()
	for name, en := range map[string]*Enumerator[probe]{"original": &e, "copy": &copied} {
		_, err := en.MoveNext()
		assert.ErrorIs(t, err, ErrDisposed, "%s: MoveNext", name)
		_, err = en.Current()
		assert.ErrorIs(t, err, ErrDisposed, "%s: Current", name)
		assert.ErrorIs(t, en.Reset(), ErrDisposed, "%s: Reset", name)
	}
	e.Dispose() // second dispose is a no-op
	copied.Dispose()
}

func TestEnumeratorStacksAreReused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.sortedset")
	defer teardown()
	//
	set := probes(1, 2, 3)
	e1 := set.Enumerator()
	stack := e1.stack
	stale := e1
	e1.Dispose()

	e2 := set.Enumerator()
	defer e2.Dispose()
	assert.Same(t, stack, e2.stack, "expected the released stack to be lent again")
	assert.NotEqual(t, stale.owner, e2.owner)

	// a stale copy must neither read nor disturb the new owner
	_, err := stale.MoveNext()
	assert.ErrorIs(t, err, ErrDisposed)
	stale.Dispose()
	items := drain(t, &e2)
	assert.Equal(t, []probe{{1}, {2}, {3}}, items)
}

func TestEnumeratorPoolIsBounded(t *testing.T) {
	set := probes(1)
	enums := make([]Enumerator[probe], 2*maxPooledStacks)
	for i := range enums {
		enums[i] = set.Enumerator()
	}
	for i := range enums {
		enums[i].Dispose()
	}
	p := poolFor[probe]()
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.LessOrEqual(t, len(p.free), maxPooledStacks)
	for _, st := range p.free {
		assert.Zero(t, st.owner, "idle stack still owned")
		assert.Empty(t, st.frames)
	}
}

func TestEnumeratorEarlyBreakReleasesStack(t *testing.T) {
	set := probes(1, 2, 3, 4)
	for v := range set.All() {
		if v.key == 2 {
			break
		}
	}
	p := poolFor[probe]()
	p.mu.Lock()
	n := len(p.free)
	var top *traversalStack[probe]
	if n > 0 {
		top = p.free[n-1]
	}
	p.mu.Unlock()
	require.Greater(t, n, 0)
	e := set.Enumerator()
	defer e.Dispose()
	assert.Same(t, top, e.stack)
}

func TestEnumeratorReverse(t *testing.T) {
	set := Of(tens(5)...)
	e := newEnumerator(set.root, true, nil)
	defer e.Dispose()
	assert.Equal(t, []int{50, 40, 30, 20, 10}, drain(t, &e))
}

func TestEnumeratorsConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.sortedset")
	defer teardown()
	//
	set := probes(rangeOf(1, 300)...)
	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for round := 0; round < 50; round++ {
				e := set.Enumerator()
				expected := 1
				for {
					ok, err := e.MoveNext()
					if err != nil {
						e.Dispose()
						return err
					}
					if !ok {
						break
					}
					v, _ := e.Current()
					if v.key != expected {
						e.Dispose()
						return fmt.Errorf("worker %d: expected %d, got %d", w, expected, v.key)
					}
					expected++
				}
				e.Dispose()
				if expected != 301 {
					return fmt.Errorf("worker %d: enumerated %d elements", w, expected-1)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
