package calc

import "errors"

var (
	ErrMalformedAddress  = errors.New("calc: malformed address")
	ErrInvalidPrefix     = errors.New("calc: invalid prefix")
	ErrNonContiguousMask = errors.New("calc: non-contiguous netmask")
	ErrAmbiguousInput    = errors.New("calc: both netmask and prefix specified")
)
