package errors

import "errors"

var (
	ErrInvalidID = errors.New("invalid room ID format")
)
