package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRemoteUnavailable = errors.New("remote lookup unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
