package service

import "errors"

// Sentinel errors.
var (
	ErrNotStarted = errors.New("service not started")
	ErrOpenStore  = errors.New("open metrics store")
)
