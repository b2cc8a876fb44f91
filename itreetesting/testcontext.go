// Package itreetesting provides deterministic interval generation and a
// brute force overlap oracle for exercising the interval index packages.
package itreetesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	Rng *rand.Rand
	T   *testing.T
}

type TestConfig struct {
	// Seed fixes the RNG so that generated interval sets are the same from
	// run to run. It is normal to force it to some fixed value.
	Seed            int64
	TestLabelPrefix string
	// MaxPosition bounds generated begin positions, and MaxLength bounds
	// generated interval lengths. Zero values select usable defaults.
	MaxPosition int64
	MaxLength   int64
}

func NewTestContext(t *testing.T, cfg TestConfig) (TestContext, TestConfig) {
	if cfg.MaxPosition == 0 {
		cfg.MaxPosition = 1 << 20
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = 1 << 10
	}
	logger.New("NOOP")
	c := TestContext{
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rng: rand.New(rand.NewSource(cfg.Seed)),
		T:   t,
	}
	return c, cfg
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Span is a half-open [Beg, End) interval. A generated set's insertion order
// is the slice order, so a Span's ID is its slice index.
type Span struct {
	Beg, End int64
}

// GenerateSpans returns count random spans within the configured position
// and length bounds.
func (c *TestContext) GenerateSpans(cfg TestConfig, count int) []Span {
	spans := make([]Span, count)
	for i := range spans {
		beg := c.Rng.Int63n(cfg.MaxPosition)
		spans[i] = Span{Beg: beg, End: beg + c.Rng.Int63n(cfg.MaxLength+1)}
	}
	return spans
}

// GenerateSortedSpans returns count random spans in (beg, end) ascending
// order, for exercising the no-permutation fast path.
func (c *TestContext) GenerateSortedSpans(cfg TestConfig, count int) []Span {
	spans := c.GenerateSpans(cfg, count)
	SortSpans(spans)
	return spans
}

// GenerateQueries returns count random query intervals, sized a few lengths
// wide so that both empty and multi-hit results are common.
func (c *TestContext) GenerateQueries(cfg TestConfig, count int) []Span {
	queries := make([]Span, count)
	for i := range queries {
		beg := c.Rng.Int63n(cfg.MaxPosition)
		queries[i] = Span{Beg: beg, End: beg + c.Rng.Int63n(4*cfg.MaxLength+1)}
	}
	return queries
}
