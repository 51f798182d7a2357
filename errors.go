package ptgeom

import "errors"

var (
	// ErrDomain is returned for degenerate numeric input, such as a range or
	// period of zero length.
	ErrDomain = errors.New("degenerate numeric domain")
	// ErrEmptyInput is returned by operations over point collections that
	// were given no points.
	ErrEmptyInput = errors.New("empty point collection")
)
