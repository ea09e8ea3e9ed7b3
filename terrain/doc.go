// Package terrain partitions a one-dimensional bar profile into maximal
// equal-height segments and derives, for that exact configuration, how
// uniformly falling water redistributes across it.
//
// What:
//
//   - Segment wraps a height plus the half-open span of original positions
//     currently sitting at that height.
//   - Profile owns the ordered, contiguous segment partition of [0, N) and
//     caches two pure derivations of it: the per-segment fill rates and the
//     next topology change (the instant two neighboring levels meet).
//   - NewProfileFromMerge rebuilds a Profile after a simultaneous set of
//     merges, coalescing cascading equal-height neighbors to a fixed point.
//
// Why:
//
//   - Exact simulation: between two topology changes every level grows
//     linearly, so a closed-form rate table replaces numerical stepping.
//   - Flow routing: a segment either collects rain directly (a basin floor)
//     or sheds it downslope toward the nearest basin on each side.
//
// Complexity:
//
//   - NewProfile:          O(N) grouping + O(S²) rate derivation.
//   - NewProfileFromMerge: O(S²) worst case over cascaded coalescing.
//   - SegmentsAt/LevelsAt: O(S) / O(N).
//
// Errors:
//
//   - ErrEmptyProfile: the height list (or a merge result) has no positions.
//
// Violated internal invariants — a merge target matching neither neighbor,
// an unmerged equal-height pair met during a destination walk, spans losing
// contiguity — are defects, not inputs, and panic loudly instead of being
// folded into the error taxonomy.
package terrain
