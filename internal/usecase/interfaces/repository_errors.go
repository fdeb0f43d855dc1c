package interfaces

import "errors"

// Errors repositories translate storage conditions into. Use cases map them
// to user-facing sentinels; raw driver errors pass through untouched.
var (
	// ErrAlreadyExists signals a conditional create hit an existing item
	// (duplicate request, duplicate response, email already registered).
	ErrAlreadyExists = errors.New("item already exists")

	// ErrConditionFailed signals a compare-and-swap update lost: the item is
	// missing or its current value no longer matches what the caller read.
	ErrConditionFailed = errors.New("storage condition failed")
)
