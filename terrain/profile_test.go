package terrain_test

import (
	"testing"

	"github.com/katalvlaran/waterfill/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePartition asserts the segment-partition invariant: spans are
// contiguous, cover [0, N) exactly once, and no adjacent pair shares a height.
func requirePartition(t *testing.T, segs []terrain.Segment, n int) {
	t.Helper()
	require.NotEmpty(t, segs)
	require.Equal(t, 0, segs[0].Span.Start)
	require.Equal(t, n, segs[len(segs)-1].Span.End)
	for i := 1; i < len(segs); i++ {
		require.Equal(t, segs[i-1].Span.End, segs[i].Span.Start, "spans must be contiguous")
		require.NotEqual(t, segs[i-1].Height, segs[i].Height, "adjacent segments must differ in height")
	}
}

// TestNewProfile_Empty verifies the empty-input sentinel.
func TestNewProfile_Empty(t *testing.T) {
	_, err := terrain.NewProfile(nil, 0)
	assert.ErrorIs(t, err, terrain.ErrEmptyProfile)

	_, err = terrain.NewProfile([]float64{}, 0)
	assert.ErrorIs(t, err, terrain.ErrEmptyProfile)
}

// TestNewProfile_GroupsDuplicates verifies that consecutive equal heights
// fuse into one wide segment at construction.
func TestNewProfile_GroupsDuplicates(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 1.0, 1.0, 2.0, 2.0, 4.0}, 0)
	require.NoError(t, err)

	want := []terrain.Segment{
		{Height: 3.0, Span: terrain.Span{Start: 0, End: 1}},
		{Height: 1.0, Span: terrain.Span{Start: 1, End: 3}},
		{Height: 2.0, Span: terrain.Span{Start: 3, End: 5}},
		{Height: 4.0, Span: terrain.Span{Start: 5, End: 6}},
	}
	require.Equal(t, want, p.Segments())
	requirePartition(t, p.Segments(), 6)
	assert.Equal(t, 6, p.Positions())
}

// TestProfile_Rates verifies the effective per-position fill rates.
func TestProfile_Rates(t *testing.T) {
	p, err := terrain.NewProfile([]float64{1.0, 1.0, 3.0}, 0)
	require.NoError(t, err)

	// Two columns of direct rain plus the slope's column, spread over width 2.
	assert.Equal(t, []float64{1.5, 0}, p.Rates())
}

// TestProfile_SegmentsAt verifies linear advancement without merging.
func TestProfile_SegmentsAt(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 1.0, 6.0, 4.0, 8.0, 9.0}, 0)
	require.NoError(t, err)

	advanced := p.SegmentsAt(0.2)
	assert.InDelta(t, 3.0, advanced[0].Height, 1e-12)
	assert.InDelta(t, 1.5, advanced[1].Height, 1e-12) // rate 2.5
	assert.InDelta(t, 4.7, advanced[3].Height, 1e-12) // rate 3.5
	assert.InDelta(t, 9.0, advanced[5].Height, 1e-12)

	// The receiver must stay untouched.
	assert.Equal(t, 1.0, p.Segments()[1].Height)
}

// TestProfile_LevelsAt verifies per-position expansion in original order.
func TestProfile_LevelsAt(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 1.0, 1.0, 2.0, 2.0, 4.0}, 0)
	require.NoError(t, err)

	levels := p.LevelsAt(0)
	assert.Equal(t, []float64{3.0, 1.0, 1.0, 2.0, 2.0, 4.0}, levels)
}

// TestNewProfileFromMerge_ChainToFlat replays the full merge chain of the
// canonical valley profile down to a single flat segment.
func TestNewProfileFromMerge_ChainToFlat(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 1.0, 6.0, 4.0, 8.0, 9.0}, 0)
	require.NoError(t, err)

	steps := []struct {
		changes []terrain.Change
		after   float64
		want    []terrain.Segment
	}{
		{
			changes: []terrain.Change{{Index: 3, Height: 6.0}},
			after:   2.0 / 3.5,
			want: []terrain.Segment{
				{Height: 3.0, Span: terrain.Span{Start: 0, End: 1}},
				{Height: 1.0, Span: terrain.Span{Start: 1, End: 2}},
				{Height: 6.0, Span: terrain.Span{Start: 2, End: 4}},
				{Height: 8.0, Span: terrain.Span{Start: 4, End: 5}},
				{Height: 9.0, Span: terrain.Span{Start: 5, End: 6}},
			},
		},
		{
			changes: []terrain.Change{{Index: 1, Height: 3.0}},
			after:   2.0 / 6.0,
			want: []terrain.Segment{
				{Height: 3.0, Span: terrain.Span{Start: 0, End: 2}},
				{Height: 6.0, Span: terrain.Span{Start: 2, End: 4}},
				{Height: 8.0, Span: terrain.Span{Start: 4, End: 5}},
				{Height: 9.0, Span: terrain.Span{Start: 5, End: 6}},
			},
		},
		{
			changes: []terrain.Change{{Index: 0, Height: 6.0}},
			after:   3.0 / 3.0,
			want: []terrain.Segment{
				{Height: 6.0, Span: terrain.Span{Start: 0, End: 4}},
				{Height: 8.0, Span: terrain.Span{Start: 4, End: 5}},
				{Height: 9.0, Span: terrain.Span{Start: 5, End: 6}},
			},
		},
		{
			changes: []terrain.Change{{Index: 0, Height: 8.0}},
			after:   4.0 / 3.0,
			want: []terrain.Segment{
				{Height: 8.0, Span: terrain.Span{Start: 0, End: 5}},
				{Height: 9.0, Span: terrain.Span{Start: 5, End: 6}},
			},
		},
		{
			changes: []terrain.Change{{Index: 0, Height: 9.0}},
			after:   5.0 / 6.0,
			want: []terrain.Segment{
				{Height: 9.0, Span: terrain.Span{Start: 0, End: 6}},
			},
		},
	}

	for _, step := range steps {
		ev, ok := p.NextEvent()
		require.True(t, ok)
		require.Equal(t, step.changes, ev.Changes)
		require.InDelta(t, step.after, ev.After, 1e-12)

		p, err = terrain.NewProfileFromMerge(p.Segments(), ev.Changes, 0)
		require.NoError(t, err)
		require.Equal(t, step.want, p.Segments())
		requirePartition(t, p.Segments(), 6)
	}

	// Flat: permanently stable.
	_, ok := p.NextEvent()
	assert.False(t, ok)
	assert.Equal(t, []float64{1.0}, p.Rates())
}

// TestNewProfileFromMerge_Cascade: absorbing the middle segment brings two
// equal heights adjacent, which must fuse in the coalescing pass.
func TestNewProfileFromMerge_Cascade(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 2.0, 3.0}, 0)
	require.NoError(t, err)

	merged, err := terrain.NewProfileFromMerge(p.Segments(), []terrain.Change{{Index: 1, Height: 3.0}}, 0)
	require.NoError(t, err)
	require.Equal(t, []terrain.Segment{
		{Height: 3.0, Span: terrain.Span{Start: 0, End: 3}},
	}, merged.Segments())
}

// TestNewProfileFromMerge_Empty verifies the empty-input sentinel.
func TestNewProfileFromMerge_Empty(t *testing.T) {
	_, err := terrain.NewProfileFromMerge(nil, nil, 0)
	assert.ErrorIs(t, err, terrain.ErrEmptyProfile)
}

// TestNewProfileFromMerge_TargetMismatchPanics: a resulting height matching
// neither neighbor is a broken invariant, not an input error.
func TestNewProfileFromMerge_TargetMismatchPanics(t *testing.T) {
	p, err := terrain.NewProfile([]float64{3.0, 2.0, 4.0}, 0)
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = terrain.NewProfileFromMerge(p.Segments(), []terrain.Change{{Index: 1, Height: 42.0}}, 0)
	})
}
