package scholar

import "errors"

// Sentinel kinds for scholar errors.
var (
	ErrInvalidMetrics = errors.New("invalid scholar metrics")
	ErrDecodeSnapshot = errors.New("decode cached snapshot")
	ErrSourceFailed   = errors.New("metrics source failed")
	ErrCacheClosed    = errors.New("metrics cache closed")
)
