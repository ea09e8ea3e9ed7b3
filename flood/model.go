package flood

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/waterfill/terrain"
)

// Model holds the initial segment partition of a bar profile plus the
// precomputed generation timeline up to +Inf. It is immutable once built:
// queries only read.
type Model struct {
	initial     *terrain.Profile
	horizon     float64
	generations []generation
}

// New builds a ready-to-query Model from one height per bar position and a
// time horizon. Heights must be finite and non-negative; the horizon is
// accepted as given and only bounds queries. opts may be nil for defaults.
// The whole generation timeline is computed here, before New returns.
//
// Returns ErrInvalidHeight or terrain.ErrEmptyProfile on bad input.
// Complexity: O(E × S), E = merge events (at most N-1), S = segments.
func New(heights []float64, horizon float64, opts *Options) (*Model, error) {
	for _, h := range heights {
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			return nil, ErrInvalidHeight
		}
	}

	eps := DefaultOptions().Epsilon
	if opts != nil && opts.Epsilon > 0 {
		eps = opts.Epsilon
	}

	initial, err := terrain.NewProfile(heights, eps)
	if err != nil {
		return nil, err
	}

	m := &Model{initial: initial, horizon: horizon}
	if err = m.buildGenerations(eps); err != nil {
		return nil, err
	}

	return m, nil
}

// buildGenerations walks the event chain: record the current topology over
// its lifetime, advance every level linearly to the event instant, apply
// the simultaneous merges, repeat. Each event removes at least one segment,
// so the walk ends within N-1 steps at a permanently stable configuration,
// recorded with an unbounded interval.
func (m *Model) buildGenerations(eps float64) error {
	parts, start := m.initial, 0.0
	for {
		event, ok := parts.NextEvent()
		if !ok {
			m.generations = append(m.generations, generation{start: start, end: math.Inf(1), parts: parts})

			return nil
		}

		end := start + event.After
		m.generations = append(m.generations, generation{start: start, end: end, parts: parts})

		next, err := terrain.NewProfileFromMerge(parts.SegmentsAt(event.After), event.Changes, eps)
		if err != nil {
			return err
		}
		parts, start = next, end
	}
}

// Levels returns the height of every original position at time t.
// Returns ErrNegativeTime when t < 0 (or NaN), ErrBeyondHorizon when t
// exceeds the horizon. Complexity: O(log E) + O(N).
func (m *Model) Levels(t float64) ([]float64, error) {
	if !(t >= 0) {
		return nil, ErrNegativeTime
	}
	if t > m.horizon {
		return nil, ErrBeyondHorizon
	}

	// Intervals are contiguous and the terminal end is +Inf, so the first
	// generation ending after t is the unique owner.
	idx := sort.Search(len(m.generations), func(i int) bool {
		return t < m.generations[i].end
	})
	gen := m.generations[idx]

	offset := t - gen.start
	if offset < 0 {
		panic(fmt.Sprintf("flood: internal: time %v precedes its generation start %v", t, gen.start))
	}

	return gen.parts.LevelsAt(offset), nil
}

// Horizon returns the maximum queryable time.
func (m *Model) Horizon() float64 {
	return m.horizon
}

// Positions returns the number of original bar positions.
func (m *Model) Positions() int {
	return m.initial.Positions()
}

// Generations returns the number of stable-topology intervals on the
// timeline, including the unbounded terminal one.
func (m *Model) Generations() int {
	return len(m.generations)
}

// StableAt returns the instant the terminal generation begins: from then on
// the topology never changes and every level follows one linear law.
func (m *Model) StableAt() float64 {
	return m.generations[len(m.generations)-1].start
}
