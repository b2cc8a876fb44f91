package itree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-intervalforest/itreetesting"
)

// recompute the expected maxEnd for each position by brute force over the
// positions its subtree (or, for an index node, its slice) covers.
func expectedMaxEnds(x *Index[int64]) []int64 {
	want := make([]int64, x.Size())
	for k := 0; k < len(x.indexNodes)-1; k++ {
		i := x.indexNodes[k]
		next := x.indexNodes[k+1]

		// index node: the whole slice
		m := x.ends[i]
		for j := i; j < next; j++ {
			m = max(m, x.ends[j])
		}
		want[i] = m

		// every tree node: its leaf span
		for node := 0; node < next-i-1; node++ {
			lvl := NodeLevel(node)
			m = x.ends[i+1+node]
			for j := LeftmostLeaf(node, lvl); j <= RightmostLeaf(node, lvl); j++ {
				m = max(m, x.ends[i+1+j])
			}
			want[i+1+node] = m
		}
	}
	return want
}

func TestAugmentationEqualsSubtreeMaximum(t *testing.T) {
	c, cfg := itreetesting.NewTestContext(t, itreetesting.TestConfig{
		Seed:            5,
		TestLabelPrefix: "TestAugmentationEqualsSubtreeMaximum",
		MaxPosition:     1 << 10,
		MaxLength:       1 << 8,
	})

	for _, n := range []int{1, 2, 3, 4, 7, 8, 12, 15, 16, 21, 64, 100, 255} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := buildInt64(t, c.GenerateSpans(cfg, n))
			assert.Equal(t, expectedMaxEnds(x), x.maxEnds)
		})
	}
}

func TestAugmentationSingleItemSlices(t *testing.T) {
	// n = 3 = 2 + 1: a slice of two and a lone index node
	x := buildInt64(t, []itreetesting.Span{
		{Beg: 0, End: 9}, {Beg: 1, End: 3}, {Beg: 2, End: 4},
	})
	require.Equal(t, []int{0, 2, 3}, x.indexNodes)

	assert.Equal(t, int64(9), x.maxEnds[0], "slice summary covers the tree")
	assert.Equal(t, int64(3), x.maxEnds[1])
	assert.Equal(t, int64(4), x.maxEnds[2], "lone index node is its own end")
}

func TestAugmentationIndexNodeDominatesTree(t *testing.T) {
	// the index node's own end exceeds everything in its tree
	x := buildInt64(t, []itreetesting.Span{
		{Beg: 0, End: 50}, {Beg: 1, End: 2}, {Beg: 2, End: 3}, {Beg: 3, End: 4},
	})
	require.Equal(t, []int{0, 4}, x.indexNodes)
	assert.Equal(t, int64(50), x.maxEnds[0])
}
