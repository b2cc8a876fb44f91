package itree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The in-order numbering for a perfect tree of size 7:
//
//	lvl 2          3
//	             /   \
//	lvl 1      1       5
//	          / \     / \
//	lvl 0    0   2   4   6
func TestNodeLevel(t *testing.T) {
	tests := []struct {
		node int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 0},
		{3, 2},
		{4, 0},
		{5, 1},
		{6, 0},
		{7, 3},
		{11, 2},
		{15, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("node %d is level %d", tt.node, tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, NodeLevel(tt.node))
		})
	}
}

func TestRootNode(t *testing.T) {
	tests := []struct {
		treeSize  int
		wantRoot  int
		wantLevel int
	}{
		{1, 0, 0},
		{3, 1, 1},
		{7, 3, 2},
		{15, 7, 3},
		{31, 15, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size %d", tt.treeSize), func(t *testing.T) {
			root := RootNode(tt.treeSize)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantLevel, RootLevel(tt.treeSize))
			assert.Equal(t, tt.wantLevel, NodeLevel(root))
		})
	}
}

func TestChildOffsets(t *testing.T) {
	// walking down from the root of a size 7 tree
	assert.Equal(t, 1, LeftChild(3, 2))
	assert.Equal(t, 5, RightChild(3, 2))
	assert.Equal(t, 0, LeftChild(1, 1))
	assert.Equal(t, 2, RightChild(1, 1))
	assert.Equal(t, 4, LeftChild(5, 1))
	assert.Equal(t, 6, RightChild(5, 1))
}

func TestLeafSpans(t *testing.T) {
	tests := []struct {
		name      string
		node, lvl int
		wantL     int
		wantR     int
	}{
		{"a leaf spans itself", 4, 0, 4, 4},
		{"level 1 node spans its pair of leaves", 5, 1, 4, 6},
		{"size 7 root spans the whole tree", 3, 2, 0, 6},
		{"size 15 root spans the whole tree", 7, 3, 0, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantL, LeftmostLeaf(tt.node, tt.lvl))
			assert.Equal(t, tt.wantR, RightmostLeaf(tt.node, tt.lvl))
		})
	}
}

// Every in-order position must be reachable from the root by child steps,
// exactly once, for the tree shapes the index embeds.
func TestInOrderCoverage(t *testing.T) {
	for p := 1; p <= 8; p++ {
		treeSize := 1<<p - 1
		seen := make([]bool, treeSize)
		var walk func(node, lvl int)
		walk = func(node, lvl int) {
			if lvl > 0 {
				walk(LeftChild(node, lvl), lvl-1)
			}
			assert.False(t, seen[node])
			seen[node] = true
			if lvl > 0 {
				walk(RightChild(node, lvl), lvl-1)
			}
		}
		walk(RootNode(treeSize), RootLevel(treeSize))
		for node, ok := range seen {
			assert.True(t, ok, fmt.Sprintf("size %d node %d unreached", treeSize, node))
		}
	}
}
