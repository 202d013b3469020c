package errs

import "errors"

var (
	ErrNoMemory    = errors.New("kernel: out of memory")
	ErrBadArgument = errors.New("kernel: bad argument")
	ErrPointerType = errors.New("kernel: type contains pointers")
	ErrReleased    = errors.New("kernel: block released")
)
