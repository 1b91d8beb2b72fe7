package sortedset

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// maxPooledStacks limits the number of idle stacks kept per element type.
const maxPooledStacks = 32

// traversalStack is the explicit stack of an enumerator. It is owned by the
// pool and lent to one enumerator at a time, identified by owner.
type traversalStack[T any] struct {
	frames []*node[T]
	owner  uint64 // 0 while idle in the pool
}

func (st *traversalStack[T]) push(n *node[T]) {
	st.frames = append(st.frames, n)
}

func (st *traversalStack[T]) pop() (*node[T], bool) {
	if len(st.frames) == 0 {
		return nil, false
	}
	n := st.frames[len(st.frames)-1]
	st.frames[len(st.frames)-1] = nil
	st.frames = st.frames[:len(st.frames)-1]
	return n, true
}

func (st *traversalStack[T]) clear() {
	clear(st.frames)
	st.frames = st.frames[:0]
}

// stackPool is a LIFO free list of traversal stacks, safe for concurrent use.
type stackPool[T any] struct {
	mu   sync.Mutex
	free []*traversalStack[T]
}

// pools holds one stackPool per element type, keyed by reflect.Type.
var pools sync.Map

// lastOwner is the source of owner ids for lent stacks.
var lastOwner atomic.Uint64

func poolFor[T any]() *stackPool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := pools.Load(key); ok {
		return p.(*stackPool[T])
	}
	p, _ := pools.LoadOrStore(key, &stackPool[T]{
		free: make([]*traversalStack[T], 0, maxPooledStacks),
	})
	return p.(*stackPool[T])
}

// acquire lends a stack to a new owner, reusing the most recently released one.
func (p *stackPool[T]) acquire() (*traversalStack[T], uint64) {
	owner := lastOwner.Add(1)
	p.mu.Lock()
	index := len(p.free) - 1
	if index < 0 {
		p.mu.Unlock()
		return &traversalStack[T]{owner: owner}, owner
	}
	st := p.free[index]
	p.free[index] = nil
	p.free = p.free[:index]
	st.owner = owner
	p.mu.Unlock()
	return st, owner
}

// release takes a stack back. Its frames are dropped and previous owners
// lose access.
func (p *stackPool[T]) release(st *traversalStack[T]) {
	st.clear()
	p.mu.Lock()
	st.owner = 0
	if len(p.free) < cap(p.free) {
		p.free = append(p.free, st)
	}
	p.mu.Unlock()
}
