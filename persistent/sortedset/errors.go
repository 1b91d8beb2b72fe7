package sortedset

import "github.com/pkg/errors"

// Errors reported by sets, builders, enumerators and list views.
// Operations wrap them with context; test for them with errors.Is.
var (
	// ErrIndexOutOfRange is returned for positions < 0 or ≥ count.
	ErrIndexOutOfRange = errors.New("sortedset: index out of range")
	// ErrDisposed is returned by any call on a disposed enumerator.
	ErrDisposed = errors.New("sortedset: enumerator has been disposed")
	// ErrNoCurrent is returned when reading the current element of an enumerator
	// which is positioned before the first or after the last element.
	ErrNoCurrent = errors.New("sortedset: enumerator is not positioned on an element")
	// ErrCollectionModified is returned by enumerators of a builder which has
	// been changed since the enumerator was created or reset.
	ErrCollectionModified = errors.New("sortedset: builder modified during enumeration")
	// ErrUnsupported is returned by mutators of read-only views.
	ErrUnsupported = errors.New("sortedset: collection is read-only")
)

func outOfRange(index, count int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, count %d", index, count)
}

func unsupported(op string) error {
	return errors.Wrap(ErrUnsupported, op)
}
