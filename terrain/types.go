// Package terrain defines core types and constants for segment bookkeeping.
package terrain

// DefaultEpsilon is the absolute tolerance under which two heights are
// considered equal and their segments merged. The default is the machine
// epsilon of float64; see Options in package flood for loosening it.
const DefaultEpsilon = 0x1p-52

// Span is a half-open interval [Start, End) of original bar positions.
// Positions are numbered once at construction and never renumbered.
type Span struct {
	Start, End int
}

// Len returns the number of positions the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Segment is an immutable value: a maximal run of original positions
// currently at the same height, plus that height.
type Segment struct {
	Height float64
	Span   Span
}

// Change records that the segment at Index reaches Height, the level of one
// of its immediate neighbors, and is absorbed into that neighbor.
type Change struct {
	Index  int
	Height float64
}

// Event is the next topology change of a configuration: every Change in
// Changes occurs simultaneously, After time units past the instant the
// configuration became current. Changes are sorted ascending by Index.
type Event struct {
	Changes []Change
	After   float64
}

// rate accumulates the water credit routed to a segment; the effective
// height-increase rate is credit spread over the segment's width.
type rate struct {
	credit float64
	width  int
}

func (r rate) perPosition() float64 {
	return r.credit / float64(r.width)
}
