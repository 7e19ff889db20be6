package mnist

import "errors"

var (
	ErrInvalidMagic  = errors.New("mnist: invalid magic")
	ErrInvalidHeader = errors.New("mnist: invalid header")
	ErrTruncated     = errors.New("mnist: file too small for declared count")
	ErrLimitExceeded = errors.New("mnist: limit exceeded")
	ErrCountMismatch = errors.New("mnist: image/label count mismatch")
)
