package apperror

import "errors"

var (
	ErrGameComplete    = errors.New("quiz is complete")
	ErrRoundNotActive  = errors.New("no active round")
	ErrEmptyGuess      = errors.New("guess is empty")
	ErrUnknownHint     = errors.New("unknown hint kind")
	ErrUnknownMesh     = errors.New("mesh is not mapped to a country")
	ErrLookupFailed    = errors.New("country data lookup failed")
	ErrCountryNotFound = errors.New("country not found")
	ErrNotFound        = errors.New("not found")
)
