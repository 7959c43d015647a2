package footprint

import "errors"

var (
	// ErrConfig reports a missing or invalid non-net configuration field.
	ErrConfig = errors.New("footprint: configuration error")

	// ErrNetBinding reports a net that cannot be bound to its pad.
	ErrNetBinding = errors.New("footprint: net binding error")

	// ErrLayout reports a broken layout invariant. It indicates a bug in the
	// generator, not bad input.
	ErrLayout = errors.New("footprint: layout invariant violated")
)
