package sortedset

import "iter"

// Enumerator walks the elements of a set or builder in sorted order.
//
//     e := set.Enumerator()
//     defer e.Dispose()
//     for {
//         ok, err := e.MoveNext()
//         if err != nil || !ok {
//             break
//         }
//         v, _ := e.Current()
//         …
//     }
//
// An enumerator starts positioned before the first element and is exhausted
// after MoveNext has reported false. Dispose returns the enumerator's stack to a
// shared pool; any call but Dispose fails with ErrDisposed afterwards.
// Enumerators are values: copies share the same stack, so disposing one copy
// disposes all of them. Disposing twice is harmless.
type Enumerator[T any] struct {
	root    *node[T]
	reverse bool
	stack   *traversalStack[T]
	owner   uint64
	current *node[T]
	builder *Builder[T] // non-nil for enumerators over a builder
	version int         // builder version at creation or reset
}

func newEnumerator[T any](root *node[T], reverse bool, b *Builder[T]) Enumerator[T] {
	e := Enumerator[T]{root: root, reverse: reverse, builder: b}
	if b != nil {
		e.root, e.version = b.root, b.version
	}
	e.stack, e.owner = poolFor[T]().acquire()
	e.pushSpine(e.root)
	return e
}

// pushSpine pushes n and its chain of left children (right children when
// walking in reverse).
func (e *Enumerator[T]) pushSpine(n *node[T]) {
	for ; n != nil; n = e.next(n) {
		e.stack.push(n)
	}
}

func (e *Enumerator[T]) next(n *node[T]) *node[T] {
	if e.reverse {
		return n.right
	}
	return n.left
}

func (e *Enumerator[T]) check() error {
	if e.stack == nil || e.stack.owner != e.owner {
		return ErrDisposed
	}
	if e.builder != nil && e.builder.version != e.version {
		return ErrCollectionModified
	}
	return nil
}

// MoveNext advances to the next element, reporting false once all elements
// have been visited.
func (e *Enumerator[T]) MoveNext() (bool, error) {
	if err := e.check(); err != nil {
		return false, err
	}
	n, ok := e.stack.pop()
	if !ok {
		e.current = nil
		return false, nil
	}
	e.current = n
	if e.reverse {
		e.pushSpine(n.left)
	} else {
		e.pushSpine(n.right)
	}
	return true, nil
}

// Current returns the element the enumerator is positioned on.
func (e *Enumerator[T]) Current() (T, error) {
	var zero T
	if err := e.check(); err != nil {
		return zero, err
	}
	if e.current == nil {
		return zero, ErrNoCurrent
	}
	return e.current.value, nil
}

// Reset positions the enumerator before the first element again. For a
// builder, the enumerator restarts with the builder's current elements.
func (e *Enumerator[T]) Reset() error {
	if e.stack == nil || e.stack.owner != e.owner {
		return ErrDisposed
	}
	if e.builder != nil {
		e.root = e.builder.root
		e.version = e.builder.version
	}
	e.current = nil
	e.stack.clear()
	e.pushSpine(e.root)
	return nil
}

// Dispose returns the enumerator's stack to the pool.
func (e *Enumerator[T]) Dispose() {
	if e.stack != nil && e.stack.owner == e.owner {
		poolFor[T]().release(e.stack)
	}
	e.stack = nil
	e.current = nil
}

// traverse ranges over a tree with a pooled enumerator. Errors of the
// enumerator (a builder changed underway) cannot be returned through an
// iterator and are raised as panics.
func traverse[T any](root *node[T], reverse bool, b *Builder[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		e := newEnumerator(root, reverse, b)
		defer e.Dispose()
		for {
			ok, err := e.MoveNext()
			if err != nil {
				panic(err)
			}
			if !ok || !yield(e.current.value) {
				return
			}
		}
	}
}
