/*
Package persistent is the home of immutable persistent collections.

Immutable persistent data structures can be copied and modified efficiently,
leaving the original unchanged. Every modification returns a new version of
the collection; the versions share all the memory they have in common.
Holding on to an old version is therefore cheap, and any number of goroutines
may read any version without locking.

Sub-packages:

	sortedset   ordered sets of unique elements on top of an AVL tree with
	            order statistics, with builders for batches of edits

Elements are ordered by comparers from package compare. A comparer is a
capability: collections created with the same comparer recognize each other,
which lets set algebra work on tree level instead of element by element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
