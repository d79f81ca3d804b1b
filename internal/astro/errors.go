package astro

import "errors"

// Engine error taxonomy. These four indicate bad call-site usage or bad
// configuration and are surfaced to the caller immediately; every other
// irregularity in chart data is recovered locally with documented defaults.
var (
	ErrInvalidInput     = errors.New("astro: invalid input")
	ErrInvalidCusps     = errors.New("astro: invalid cusps")
	ErrMalformedPayload = errors.New("astro: malformed payload")
	ErrInvalidWeights   = errors.New("astro: invalid weights")
)
