package refresh

import "errors"

// ErrAlreadyRun is returned by Run on a Refresher that has already run.
var ErrAlreadyRun = errors.New("refresher already run")
