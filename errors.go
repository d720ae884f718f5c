package ribbon

import "errors"

// The two failure classes of Build. Both are terminal for the invocation:
// no partial mesh is produced and the caller must correct the input before
// retrying. Wrapped errors carry diagnostic context; test with errors.Is.
var (
	// ErrInvalidInput reports caller-correctable arguments: a path with
	// fewer than two points (before or after filtering), a non-positive or
	// non-finite width, a malformed point, or a zero-length segment that
	// survived filtering.
	ErrInvalidInput = errors.New("ribbon: invalid input")

	// ErrDegenerateGeometry reports a numerical edge case: offset lines at
	// a joint were near-parallel where the algorithm assumed they were not.
	ErrDegenerateGeometry = errors.New("ribbon: degenerate geometry")
)
