package kv

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound      = errors.New("key not found")
	ErrClosed        = errors.New("store closed")
	ErrEmptyKey      = errors.New("empty key")
	ErrUnknownDriver = errors.New("unknown store driver")
)
