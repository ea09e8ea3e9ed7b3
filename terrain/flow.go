package terrain

import "fmt"

// acceptsWater reports whether segment idx collects rain directly: every
// existing neighbor must be strictly taller, making it a basin floor. A
// lone segment spanning the whole profile trivially accepts. Complexity: O(1).
func acceptsWater(segments []Segment, idx int) bool {
	return (idx == 0 || segments[idx-1].Height > segments[idx].Height) &&
		(idx == len(segments)-1 || segments[idx+1].Height > segments[idx].Height)
}

// findDestination walks from segment idx in the given direction and returns
// the index where water shed by idx ends up: the farthest segment reached
// while heights strictly decrease (the floor of the first basin). The walk
// stops at the first taller segment, discarding it. Meeting an equal height
// is a defect: equal neighbors are merged at every construction point.
//
// When the walk moved but ran off the profile without finding anything
// lower, the boundary segment itself is the destination: an open edge has
// no confining wall, so water pushed there keeps accumulating on it.
//
// ok is false when no destination exists in that direction.
// Complexity: O(S).
func findDestination(segments []Segment, idx int, dir direction) (dest int, ok bool) {
	if idx >= len(segments) {
		return 0, false
	}

	lowest := segments[idx].Height
	i := idx
	hitWall := false
	for dir.step(&i, len(segments)) {
		h := segments[i].Height
		if h > lowest {
			hitWall = true

			break
		}
		if h == lowest {
			panic(fmt.Sprintf("terrain: internal: unmerged equal heights %v at segments %d and %d", h, idx, i))
		}
		lowest = h
		dest, ok = i, true
	}
	if ok {
		return dest, true
	}
	if !hitWall && i != idx {
		// Open boundary: the edge segment absorbs the flow.
		return i, true
	}

	return 0, false
}

// fillRates derives the rate table for a segment list: each position sheds
// one height unit of water per time unit, routed either onto its own
// segment (basin floors) or split toward the basins found on each side.
// Complexity: O(S²) worst case (each segment may walk the whole list).
func fillRates(segments []Segment) []rate {
	rates := make([]rate, len(segments))
	for idx := range rates {
		rates[idx].width = 1
	}

	for idx, seg := range segments {
		width := seg.Span.Len()
		rates[idx].width = width
		if acceptsWater(segments, idx) {
			rates[idx].credit += float64(width)

			continue
		}

		left, okLeft := findDestination(segments, idx, towardLower)
		right, okRight := findDestination(segments, idx, towardHigher)
		switch {
		case okLeft && okRight:
			// A local peak between two basins: split evenly.
			rates[left].credit += float64(width) / 2
			rates[left].width = segments[left].Span.Len()
			rates[right].credit += float64(width) / 2
			rates[right].width = segments[right].Span.Len()
		case okLeft:
			rates[left].credit += float64(width)
			rates[left].width = segments[left].Span.Len()
		case okRight:
			rates[right].credit += float64(width)
			rates[right].width = segments[right].Span.Len()
		}
	}

	return rates
}
