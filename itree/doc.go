// Package itree provides a read-only index of half-open intervals [beg, end)
// answering range-overlap queries.
package itree

/*

# Layout

The index stores N intervals sorted by (beg, end), both ascending, in three
parallel arrays: begs, ends and maxEnds. Viewing N as a sum of powers of two,
the sorted arrays are a concatenation of slices, one per binary digit of N,
highest digit first. The leftmost item of each slice is its 'index node'. The
remaining 2^p - 1 items form an implicit binary search tree, stored in sorted
order, as in Heng Li's cgranges.

So for N = 7 = 4 + 2 + 1 the array decomposes into three slices:

	offset    0  1  2  3   4  5   6
	         [I  .  R  .] [I  .] [I]
	              / \
	slice 0: index node at 0, tree of 3 rooted at offset 2
	slice 1: index node at 4, tree of 1 at offset 5
	slice 2: index node at 6, no tree

Because each embedded tree is perfect (full and complete) by construction,
node levels and child offsets are pure binary arithmetic on the node's
position within its tree, and none of the boundary fix-ups cgranges needs for
ragged right edges apply here.

# Augmentation

maxEnds[i] is the largest interval end within the subtree rooted at sorted
position i, or, for an index node, within the whole of its slice. Query
traversal prunes any subtree whose maxEnd does not reach past the query
begin, and stops outright at the first slice whose index node begins at or
after the query end; index nodes occupy sorted positions, so every later
slice is irrelevant too.

# Reading and sharing

A built Index is immutable. Any number of goroutines may walk it
concurrently with no synchronisation. The Snapshot view exposes the raw
arrays to the codec layer so an index can be serialized and distributed to
worker processes; see the codec and store packages.
*/
