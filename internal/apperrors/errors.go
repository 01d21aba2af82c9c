package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates that a required read from the hosted data store
// failed. Statement requests cannot proceed without their primary inputs.
var ErrUpstream = errors.New("upstream data fetch failed")
