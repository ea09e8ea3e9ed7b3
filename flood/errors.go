package flood

import "errors"

var (
	// ErrInvalidHeight indicates a profile height that is negative, infinite, or NaN.
	ErrInvalidHeight = errors.New("flood: heights must be finite and non-negative")
	// ErrNegativeTime indicates a query time before the start of the simulation.
	ErrNegativeTime = errors.New("flood: query time must not be negative")
	// ErrBeyondHorizon indicates a query time past the configured horizon.
	ErrBeyondHorizon = errors.New("flood: query time exceeds the model horizon")
)
