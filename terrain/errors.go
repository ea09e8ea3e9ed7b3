package terrain

import "errors"

var (
	// ErrEmptyProfile indicates the height list covers no positions at all.
	ErrEmptyProfile = errors.New("terrain: height profile must contain at least one position")
)
