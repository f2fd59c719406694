package sdk

import "errors"

var (
	// ErrInvalidOrder reports a host call that is not legal in the
	// instance's current lifecycle state.
	ErrInvalidOrder = errors.New("call out of lifecycle order")

	// ErrDestroyed reports any call on a destroyed instance.
	ErrDestroyed = errors.New("instance destroyed")

	// ErrUnknownField reports extraction of a field the plugin never
	// declared.
	ErrUnknownField = errors.New("unknown field")

	// ErrMalformedEvent reports an event the extractor cannot decode.
	ErrMalformedEvent = errors.New("malformed event")
)
