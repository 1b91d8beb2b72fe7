/*
Package compare provides total orders for sorted collections.

A Comparer is a capability: a three-way compare function bound to a name.
Comparers are handed around by pointer, so two collections can tell whether
they are ordered by the very same comparer (pointer identity) rather than by
two functions which merely behave alike. Sorted collections rely on this to
short-cut bulk operations.

A comparer must be side-effect free and must not change its behaviour during
the lifetime of any collection built with it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compare

import (
	"cmp"
	"fmt"
	"reflect"
	"sync"

	"github.com/npillmayer/immutable/maybe"
)

// Comparer is a total order for values of type T. Compare returns a negative
// number if a < b, zero if a and b are considered equal, and a positive number
// otherwise.
type Comparer[T any] struct {
	name string
	fn   func(a, b T) int
}

// New binds a compare function to a name. Every call creates a distinct
// comparer, even for identical functions.
func New[T any](name string, fn func(a, b T) int) *Comparer[T] {
	if fn == nil {
		panic("compare: comparer needs a compare function")
	}
	return &Comparer[T]{name: name, fn: fn}
}

// Compare performs a three-way comparison of a and b.
func (c *Comparer[T]) Compare(a, b T) int {
	return c.fn(a, b)
}

// Equal is true if c considers a and b to be the same element.
func (c *Comparer[T]) Equal(a, b T) bool {
	return c.fn(a, b) == 0
}

func (c *Comparer[T]) String() string {
	return c.name
}

// defaults holds one comparer per ordered type, keyed by reflect.Type.
var defaults sync.Map

// Default returns the natural order of an ordered type (see cmp.Compare).
// Every call for the same type T returns the identical comparer.
func Default[T cmp.Ordered]() *Comparer[T] {
	key := reflect.TypeFor[T]()
	if c, ok := defaults.Load(key); ok {
		return c.(*Comparer[T])
	}
	c, _ := defaults.LoadOrStore(key, New(fmt.Sprintf("default(%s)", key), cmp.Compare[T]))
	return c.(*Comparer[T])
}

// Reverse returns a comparer for the inverse order of c.
func Reverse[T any](c *Comparer[T]) *Comparer[T] {
	return New("reverse("+c.name+")", func(a, b T) int {
		return c.fn(b, a)
	})
}

// Maybe lifts a comparer to optional values. Nothing sorts before every Just
// and two Nothings are equal, which makes Nothing behave like a null element.
func Maybe[T any](c *Comparer[T]) *Comparer[maybe.Maybe[T]] {
	return New("maybe("+c.name+")", func(a, b maybe.Maybe[T]) int {
		x, xok := a.Get()
		y, yok := b.Get()
		switch {
		case !xok && !yok:
			return 0
		case !xok:
			return -1
		case !yok:
			return 1
		}
		return c.fn(x, y)
	})
}

// By orders values of type T by a key derived from them, composing key with
// the order c of the keys. Values with equal keys are considered equal.
func By[T, K any](name string, key func(T) K, c *Comparer[K]) *Comparer[T] {
	return New(name, func(a, b T) int {
		return c.fn(key(a), key(b))
	})
}
