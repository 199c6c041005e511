package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrAdminDisabled = errors.New("manual metric updates are disabled")
	ErrBodyTooLarge  = errors.New("request body too large")
)
