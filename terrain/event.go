package terrain

import "math"

// nextEvent locates the earliest future topology change of a configuration:
// the first instant a rising segment reaches the level of a strictly taller
// immediate neighbor. Only rising segments produce candidates, and only
// toward taller neighbors; a segment rises away from shorter ones, and an
// equal neighbor is impossible by the partition invariant.
//
// Of a segment's two possible gaps the smaller wins, a tie preferring the
// left neighbor. Across segments the minimal time-to-event wins, and every
// candidate equal to it within eps joins the same simultaneous Event,
// ascending by segment index. nil means permanently stable.
// Complexity: O(S).
func nextEvent(segments []Segment, rates []rate, eps float64) *Event {
	var next *Event
	for idx, r := range rates {
		velocity := r.perPosition()
		if velocity <= 0 {
			continue
		}

		gap, target := 0.0, 0.0
		found := false
		if idx > 0 && segments[idx].Height < segments[idx-1].Height {
			gap = segments[idx-1].Height - segments[idx].Height
			target = segments[idx-1].Height
			found = true
		}
		if idx < len(segments)-1 && segments[idx].Height < segments[idx+1].Height {
			rightGap := segments[idx+1].Height - segments[idx].Height
			if !found || rightGap < gap {
				gap = rightGap
				target = segments[idx+1].Height
				found = true
			}
		}
		if !found {
			continue
		}

		after := gap / velocity
		change := Change{Index: idx, Height: target}
		switch {
		case next == nil:
			next = &Event{Changes: []Change{change}, After: after}
		case math.Abs(after-next.After) <= eps:
			next.Changes = append(next.Changes, change)
		case after < next.After:
			next = &Event{Changes: []Change{change}, After: after}
		}
	}

	return next
}
