package itree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-intervalforest/itreetesting"
)

func TestValidateBuiltIndexes(t *testing.T) {
	c, cfg := itreetesting.NewTestContext(t, itreetesting.TestConfig{
		Seed:            23,
		TestLabelPrefix: "TestValidateBuiltIndexes",
	})
	for _, n := range []int{0, 1, 2, 7, 31, 100} {
		x := buildInt64(t, c.GenerateSpans(cfg, n))
		assert.NoError(t, x.Validate())
	}
}

func TestFromSnapshotRoundtrip(t *testing.T) {
	x := buildInt64(t, []itreetesting.Span{
		{Beg: 50, End: 60}, {Beg: 10, End: 20}, {Beg: 30, End: 40},
	})

	y, err := FromSnapshot(x.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, x.QueryOverlap(0, 100), y.QueryOverlap(0, 100))
	assert.Equal(t, x.ID(0), y.ID(0))
}

func TestFromSnapshotRejectsCorruption(t *testing.T) {
	build := func() Snapshot[int64] {
		return buildInt64(t, []itreetesting.Span{
			{Beg: 50, End: 60}, {Beg: 10, End: 20}, {Beg: 30, End: 40},
		}).Snapshot()
	}
	clone := func(s Snapshot[int64]) Snapshot[int64] {
		c := Snapshot[int64]{
			Begs:       append([]int64(nil), s.Begs...),
			Ends:       append([]int64(nil), s.Ends...),
			MaxEnds:    append([]int64(nil), s.MaxEnds...),
			IndexNodes: append([]int(nil), s.IndexNodes...),
		}
		if s.Permute != nil {
			c.Permute = append([]int32(nil), s.Permute...)
		}
		return c
	}

	tests := []struct {
		name    string
		corrupt func(s *Snapshot[int64])
		want    error
	}{
		{
			"truncated ends",
			func(s *Snapshot[int64]) { s.Ends = s.Ends[:2] },
			ErrLengthMismatch,
		},
		{
			"inverted interval",
			func(s *Snapshot[int64]) { s.Ends[1] = s.Begs[1] - 1 },
			ErrBadInterval,
		},
		{
			"order violation",
			func(s *Snapshot[int64]) { s.Begs[2] = 0 },
			ErrUnsorted,
		},
		{
			"augmentation below an end",
			func(s *Snapshot[int64]) { s.MaxEnds[0] = s.Ends[0] - 1 },
			ErrBadMaxEnd,
		},
		{
			"slice offsets for the wrong count",
			func(s *Snapshot[int64]) { s.IndexNodes = []int{0, 4} },
			ErrBadSliceOffsets,
		},
		{
			"permutation too short",
			func(s *Snapshot[int64]) { s.Permute = s.Permute[:1] },
			ErrBadPermutation,
		},
		{
			"permutation id out of range",
			func(s *Snapshot[int64]) { s.Permute[0] = 99 },
			ErrBadPermutation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := clone(build())
			tt.corrupt(&s)
			_, err := FromSnapshot(s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
