package traverse

import "errors"

var (
	// ErrUnsupportedRoot is returned when the root of an operation is not a
	// traversable container (a bare scalar, a nil value, or a record while
	// records are configured as opaque leaves).
	ErrUnsupportedRoot = errors.New("root is not a traversable container")

	// ErrNilCallback is returned before traversal starts when the
	// caller-supplied callback is nil.
	ErrNilCallback = errors.New("callback must not be nil")

	// ErrDepthExceeded is returned when nesting exceeds the configured
	// MaxDepth guard.
	ErrDepthExceeded = errors.New("nesting depth limit exceeded")
)
