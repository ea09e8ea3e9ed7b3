// Package waterfill is an exact, closed-form simulator for rain falling on
// a one-dimensional terrain of vertical bars — no time stepping, no
// integration error, just the height of every bar at any instant you ask.
//
// 🚀 What is waterfill?
//
//	A small, pure-Go engine that treats "trapping rain water" as a
//	continuous-time process:
//		• Water falls everywhere at one height unit per time unit
//		• Slopes shed their rain toward the nearest basin on each side
//		• Filling basins meet their walls, merge, and reroute the flow
//		• Between merges every level grows linearly — so queries are exact
//
// ✨ Why choose waterfill?
//
//   - Closed-form answers – a precomputed event timeline, not a step loop
//   - Deterministic edge cases – equal-height ties, simultaneous merges and
//     open boundaries all resolve the same way every run
//   - Immutable models – build once, query from any number of goroutines
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	terrain/ — segment partition of the profile, flow routing, fill rates,
//	           merge-event detection and application
//	flood/   — the queryable Model: eager generation timeline plus exact
//	           point-in-time level queries
//
// Quick ASCII example:
//
//	    █
//	  █~█        heights 3,1,6,4,8,9: rain collects in the
//	  █~█▒█      basins (~, ▒) until each meets its lower
//	  █▒███     wall and the basins merge into wider ones.
//	  █████
//	  ██████
//
// Dive into examples/ for a sampled timeline and a step-by-step merge walk.
//
//	go get github.com/katalvlaran/waterfill
package waterfill
