package matcherrors

import "errors"

// Sentinel errors shared by config, game and cli. Input errors are always
// recoverable: the caller prints them and prompts again.
var (
	ErrOddDimension         = errors.New("board dimension must be even")
	ErrDimensionOutOfRange  = errors.New("board dimension out of range")
	ErrMalformedInput       = errors.New("expected two integers separated by a space")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrSameCell             = errors.New("a card cannot be matched with itself")
	ErrNoHiddenCards        = errors.New("no hidden cards left")
	ErrInputClosed          = errors.New("input closed")
	ErrInvalidConfig        = errors.New("invalid configuration")
)
