package flood

import "github.com/katalvlaran/waterfill/terrain"

// Options configures model construction.
//   - Epsilon: absolute tolerance under which two heights (and two candidate
//     event times) are considered equal. Values <= 0 select
//     terrain.DefaultEpsilon, the float64 machine epsilon. Loosening it can
//     recover merges lost to accumulated floating-point drift across many
//     generations; the tie-break rule (prefer the left neighbor on equal
//     gaps) is unaffected.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the configuration used when New receives nil:
// machine-epsilon height equality.
func DefaultOptions() Options {
	return Options{Epsilon: terrain.DefaultEpsilon}
}

// generation pins one stable flow topology to the half-open time interval
// [start, end). The terminal generation's end is +Inf.
type generation struct {
	start, end float64
	parts      *terrain.Profile
}
