package itree

import "math/bits"

// The functions here navigate the perfect implicit tree embedded in a slice.
// Nodes are identified by their in-order position within the tree, so for a
// tree of size 7:
//
//	lvl 2          3
//	             /   \
//	lvl 1      1       5
//	          / \     / \
//	lvl 0    0   2   4   6
//
// A node's level is recoverable from its position alone, as the count of
// trailing one bits, and child offsets are powers of two derived from the
// level. None of these functions range check; callers are expected to stay
// within a tree they have sized with RootNode/RootLevel.

// NodeLevel returns the level of the node at in-order position node. Leaves
// have level 0.
func NodeLevel(node int) int {
	return bits.TrailingZeros64(^uint64(node))
}

// RootLevel returns the level of the root of a perfect tree of treeSize
// nodes, floor(log2(treeSize)).
func RootLevel(treeSize int) int {
	return bits.Len64(uint64(treeSize)) - 1
}

// RootNode returns the in-order position of the root of a perfect tree of
// treeSize nodes.
func RootNode(treeSize int) int {
	return 1<<RootLevel(treeSize) - 1
}

// LeftChild returns the position of the left child of node, which must be at
// level lvl >= 1.
func LeftChild(node, lvl int) int {
	return node - 1<<(lvl-1)
}

// RightChild returns the position of the right child of node, which must be
// at level lvl >= 1.
func RightChild(node, lvl int) int {
	return node + 1<<(lvl-1)
}

// LeftmostLeaf returns the position of the leftmost descendant of node at
// level lvl.
func LeftmostLeaf(node, lvl int) int {
	return node - (1<<lvl - 1)
}

// RightmostLeaf returns the position of the rightmost descendant of node at
// level lvl.
func RightmostLeaf(node, lvl int) int {
	return node + (1<<lvl - 1)
}
