package terrain

// direction selects which neighbor a segment traversal visits next.
type direction int

const (
	// towardLower walks toward decreasing segment indices.
	towardLower direction = iota
	// towardHigher walks toward increasing segment indices.
	towardHigher
)

// step advances *idx one position in the chosen direction within [0, limit).
// It reports false, leaving *idx untouched, exactly when the step would
// leave the range. Complexity: O(1).
func (d direction) step(idx *int, limit int) bool {
	if d == towardLower {
		if *idx == 0 {
			return false
		}
		*idx--

		return true
	}
	if *idx+1 >= limit {
		return false
	}
	*idx++

	return true
}
