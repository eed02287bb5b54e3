package tracking

import "errors"

var (
	ErrNoPosition      = errors.New("no position available")
	ErrAlreadyStarted  = errors.New("broadcaster already started")
	ErrInvalidInterval = errors.New("interval must be positive")
)
