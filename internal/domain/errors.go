package domain

import "errors"

// Sentinel errors used throughout the application.
// Callers wrap them with fmt.Errorf("...: %w") and test with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrListen        = errors.New("listen failed")
)
