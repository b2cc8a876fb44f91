package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-intervalforest/itreetesting"
)

func TestCBORRoundtrip(t *testing.T) {
	c, cfg := itreetesting.NewTestContext(t, itreetesting.TestConfig{
		Seed:            31,
		TestLabelPrefix: "TestCBORRoundtrip",
	})

	tests := []struct {
		name  string
		spans []itreetesting.Span
	}{
		{"empty index", nil},
		{"sorted input", c.GenerateSortedSpans(cfg, 40)},
		{"shuffled input", c.GenerateSpans(cfg, 41)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := buildIndex(t, tt.spans)

			data, err := MarshalCBOR(x, Int64Keys)
			require.NoError(t, err)

			y, err := UnmarshalCBOR(data, Int64Keys)
			require.NoError(t, err)

			for _, q := range c.GenerateQueries(cfg, 32) {
				assert.Equal(t, x.QueryOverlap(q.Beg, q.End), y.QueryOverlap(q.Beg, q.End))
			}
		})
	}
}

func TestCBORDeterministic(t *testing.T) {
	x := buildIndex(t, []itreetesting.Span{
		{Beg: 50, End: 60}, {Beg: 10, End: 20}, {Beg: 30, End: 40},
	})
	a, err := MarshalCBOR(x, Int64Keys)
	require.NoError(t, err)

	y, err := UnmarshalCBOR(a, Int64Keys)
	require.NoError(t, err)
	b, err := MarshalCBOR(y, Int64Keys)
	require.NoError(t, err)

	assert.Equal(t, a, b, "re-encoding a decoded envelope is byte identical")
}

func TestCBORKeyTagMismatch(t *testing.T) {
	x := buildIndex(t, []itreetesting.Span{{Beg: 1, End: 2}})
	data, err := MarshalCBOR(x, Int64Keys)
	require.NoError(t, err)

	_, err = UnmarshalCBOR(data, Int32Keys)
	assert.ErrorIs(t, err, ErrKeyTagWrong)
}
