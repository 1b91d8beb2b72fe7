/*
Package sortedset implements an immutable persistent sorted set.

A Set is backed by an AVL tree. Every node caches the size of its subtree,
which gives order statistics (the rank of an element and the element at a
given position) in logarithmic time. “Modifying” a set returns a new set and
leaves the original untouched; both share every subtree which has not been
touched by the modification.

    s := sortedset.Of(30, 10, 20)
    t := s.Add(15)               // s is still {10, 20, 30}
    i := t.IndexOf(20)           // 2
    v, err := t.At(1)            // 15

Operations which do not change a set return the receiver itself. Adding an
element already present, removing an absent one, or forming the union with an
empty set are therefore cheap, and clients may compare sets by pointer to find
out if anything changed.

Builders

A Builder batches edits. It starts from a set and mutates privately owned
nodes in place, copying shared nodes on first write only. ToImmutable freezes
the builder's nodes and publishes them as a new Set; if no edit happened, the
set the builder was created from is returned.

Enumerators

Sets may be ranged over with All and Reverse. For finer control, an
Enumerator walks the tree with an explicit stack drawn from a process-wide
pool. Enumerators are small values; copies share the pooled stack, and
disposing one of them disposes all of them.

Concurrency

Published sets are read-only and may be read from any number of goroutines.
A builder must not be used from more than one goroutine at a time.
UnsafeItemRef hands out pointers into shared nodes; writing through them
while other goroutines read is a data race.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sortedset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.sortedset'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.sortedset")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sortedset: "+msg, msgargs...)
		panic(msg)
	}
}
