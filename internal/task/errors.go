package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("next step text is empty")
	ErrInvalidSourceType = errors.New("invalid source type")
	ErrMissingSourceID   = errors.New("source id is required")
)
