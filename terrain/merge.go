package terrain

import (
	"fmt"
	"math"
)

// NewProfileFromMerge rebuilds a Profile after a simultaneous set of
// topology changes detected on segments (already advanced to the instant
// the event fires). Each change's Height must exactly equal the height of
// the immediate left neighbor (checked first) or the immediate right
// neighbor; anything else means the event detector and the merge step
// disagree, which is a defect, and panics. The changed segment's span is
// absorbed into the matching neighbor.
//
// Absorptions can bring previously separated equal heights next to each
// other, so the survivors are coalesced again and again until no equal
// adjacent pair (within eps) remains. eps <= 0 selects DefaultEpsilon.
// Returns ErrEmptyProfile when segments is empty or nothing survives.
// Complexity: O(S²) worst case over cascaded coalescing passes.
func NewProfileFromMerge(segments []Segment, changes []Change, eps float64) (*Profile, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyProfile
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	pool := make([]Segment, len(segments))
	copy(pool, segments)
	absorbed := make([]bool, len(pool))

	for _, ch := range changes {
		idx := ch.Index
		if idx < 0 || idx >= len(pool) || absorbed[idx] {
			panic(fmt.Sprintf("terrain: internal: change targets unusable segment %d", idx))
		}
		was := pool[idx]
		switch {
		case idx >= 1 && ch.Height == segments[idx-1].Height:
			joinSpans(&pool[idx-1], absorbed[idx-1], was.Span, false)
		case idx+1 < len(segments) && ch.Height == segments[idx+1].Height:
			joinSpans(&pool[idx+1], absorbed[idx+1], was.Span, true)
		default:
			panic(fmt.Sprintf("terrain: internal: segment %d reached %v matching neither neighbor", idx, ch.Height))
		}
		absorbed[idx] = true
	}

	// Coalesce until a fixed point: each pass compacts the survivors, and
	// only a pass that removed nothing ends the loop.
	for {
		live := make([]Segment, 0, len(pool))
		for idx, seg := range pool {
			if !absorbed[idx] {
				live = append(live, seg)
			}
		}
		if len(live) == 0 {
			return nil, ErrEmptyProfile
		}
		if len(live) == len(pool) {
			pool = live

			break
		}
		pool = live
		absorbed = make([]bool, len(pool))
		for idx := 1; idx < len(pool); idx++ {
			if absorbed[idx-1] || absorbed[idx] {
				continue
			}
			if math.Abs(pool[idx-1].Height-pool[idx].Height) <= eps {
				joinSpans(&pool[idx-1], false, pool[idx].Span, false)
				absorbed[idx] = true
			}
		}
	}

	return finishProfile(pool, eps), nil
}

// joinSpans extends into's span to cover span, which must be adjacent to it
// on the side selected by before (true: span sits left of into). The
// receiving segment must still be live.
func joinSpans(into *Segment, intoAbsorbed bool, span Span, before bool) {
	if intoAbsorbed {
		panic("terrain: internal: absorbing into an already absorbed segment")
	}
	if before {
		if span.End != into.Span.Start {
			panic(fmt.Sprintf("terrain: internal: spans %v and %v are not adjacent", span, into.Span))
		}
		into.Span.Start = span.Start

		return
	}
	if into.Span.End != span.Start {
		panic(fmt.Sprintf("terrain: internal: spans %v and %v are not adjacent", into.Span, span))
	}
	into.Span.End = span.End
}
