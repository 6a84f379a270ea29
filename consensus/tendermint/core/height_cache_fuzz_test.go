package core

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// TestHeightCacheFuzzPreservesInsertionOrderAndBounds seeds a batch of
// random (height-offset, voter) pairs and checks two invariants that must
// hold no matter what the fuzzer generates: Insert never accepts a
// message further ahead than MaxHeightsAhead, and DrainEqual returns
// whatever was accepted for an exact height back in insertion order.
func TestHeightCacheFuzzPreservesInsertionOrderAndBounds(t *testing.T) {
	f := fuzz.NewWithSeed(42).NilChance(0)

	cfg := CacheConfig{MaxHeightsAhead: 3, MaxTotalMessages: 1000}
	c := NewHeightCache(cfg)
	const current Height = 100

	var wantAtCurrent []ValidatorID
	accepted := 0
	for i := 0; i < 500; i++ {
		var offset, voter uint8
		f.Fuzz(&offset)
		f.Fuzz(&voter)
		offset %= 5 // heights 100..104; 104 exceeds MaxHeightsAhead

		h := current + Height(offset)
		msg := prevoteAt(h, 0, voter)
		ok := c.Insert(current, msg)

		if offset > 3 {
			require.False(t, ok, "offset %d exceeds MaxHeightsAhead", offset)
			continue
		}
		require.True(t, ok)
		accepted++
		if h == current {
			wantAtCurrent = append(wantAtCurrent, voterID(voter))
		}
	}
	require.Equal(t, accepted, c.Len())

	drained := c.DrainEqual(current)
	require.Len(t, drained, len(wantAtCurrent))
	for i, msg := range drained {
		require.Equal(t, wantAtCurrent[i], msg.Sender())
	}
}
