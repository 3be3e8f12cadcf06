package core

import "errors"

// ErrInvalidInput is returned for empty or too short series, non-positive
// periods and any other argument a calculation cannot work with.
var ErrInvalidInput = errors.New("invalid input")
