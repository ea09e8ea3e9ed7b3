package terrain

import "math"

// Profile is an immutable snapshot of the bar profile partitioned into
// maximal equal-height segments, together with the fill rates and the next
// topology change derived for that exact configuration. Both derivations
// are computed once at construction and never recomputed; advancing time or
// applying an event always yields a fresh Profile.
type Profile struct {
	segments []Segment
	rates    []rate
	next     *Event
	eps      float64
}

// NewProfile builds a Profile from one height per original position,
// fusing consecutive positions whose heights are equal within eps into one
// segment. A run is compared against its first height, not its predecessor.
// eps <= 0 selects DefaultEpsilon.
// Returns ErrEmptyProfile when heights is empty.
// Complexity: O(N) grouping + O(S²) derived state, S = segment count.
func NewProfile(heights []float64, eps float64) (*Profile, error) {
	if len(heights) == 0 {
		return nil, ErrEmptyProfile
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	segments := make([]Segment, 0, len(heights))
	current := Segment{Height: heights[0], Span: Span{Start: 0, End: 1}}
	for idx := 1; idx < len(heights); idx++ {
		if math.Abs(heights[idx]-current.Height) <= eps {
			current.Span.End++

			continue
		}
		segments = append(segments, current)
		current = Segment{Height: heights[idx], Span: Span{Start: idx, End: idx + 1}}
	}
	segments = append(segments, current)

	return finishProfile(segments, eps), nil
}

// finishProfile attaches the cached derivations to a finished segment list.
func finishProfile(segments []Segment, eps float64) *Profile {
	rates := fillRates(segments)

	return &Profile{
		segments: segments,
		rates:    rates,
		next:     nextEvent(segments, rates, eps),
		eps:      eps,
	}
}

// Segments returns a copy of the ordered segment partition.
func (p *Profile) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)

	return out
}

// Rates returns each segment's effective fill rate in height units per time
// unit. A zero rate means the segment sheds all its rain downslope.
func (p *Profile) Rates() []float64 {
	out := make([]float64, len(p.rates))
	for idx, r := range p.rates {
		out[idx] = r.perPosition()
	}

	return out
}

// NextEvent returns the next topology change of this configuration.
// ok is false when the configuration is permanently stable: no level will
// ever reach a taller neighbor, so no merge can occur at any future time.
func (p *Profile) NextEvent() (Event, bool) {
	if p.next == nil {
		return Event{}, false
	}

	return *p.next, true
}

// Epsilon returns the height tolerance this Profile merges under.
func (p *Profile) Epsilon() float64 {
	return p.eps
}

// Positions returns the total number of original bar positions covered.
func (p *Profile) Positions() int {
	return p.segments[len(p.segments)-1].Span.End
}

// SegmentsAt returns the segment list advanced dt time units under the
// cached fill rates. Heights move linearly; no merging is applied, so the
// result is only meaningful for dt within this configuration's lifetime.
// Complexity: O(S).
func (p *Profile) SegmentsAt(dt float64) []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	for idx := range out {
		out[idx].Height += p.rates[idx].perPosition() * dt
	}

	return out
}

// LevelsAt expands SegmentsAt(dt) back to one height per original position,
// in original position order. Complexity: O(N).
func (p *Profile) LevelsAt(dt float64) []float64 {
	levels := make([]float64, 0, p.Positions())
	for _, seg := range p.SegmentsAt(dt) {
		for i := 0; i < seg.Span.Len(); i++ {
			levels = append(levels, seg.Height)
		}
	}

	return levels
}
