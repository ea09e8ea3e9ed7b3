// Package flood answers exact point-in-time water-level queries over a
// one-dimensional bar profile under uniform rainfall.
//
// What:
//
//   - New builds a Model from one non-negative finite height per bar and a
//     time horizon, eagerly precomputing the full timeline of "generations":
//     half-open time intervals during which the flow topology is stable,
//     each carrying the terrain.Profile valid for that interval.
//   - Model.Levels(t) returns the height of every original position at
//     time t, located by interval containment and advanced in closed form.
//
// Why:
//
//   - Between two basin merges every level grows linearly, so a query is a
//     generation lookup plus a rate multiplication: no time stepping, no
//     integration error.
//   - The timeline ends with an unbounded terminal generation, so any time
//     within the horizon falls in exactly one interval.
//
// Complexity:
//
//   - New:    O(E × S) with E merge events (E ≤ N-1) and S segments.
//   - Levels: O(log E) lookup + O(N) expansion.
//
// Concurrency: a Model is immutable after New; any number of goroutines may
// query it without coordination.
//
// Errors:
//
//   - ErrInvalidHeight: a height is negative, infinite, or NaN.
//   - terrain.ErrEmptyProfile: the height list is empty.
//   - ErrNegativeTime, ErrBeyondHorizon: the query time is out of range.
package flood
