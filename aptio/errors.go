package aptio

import "errors"

var (
	ErrorInputNotFound = errors.New("Input is not a file")
	ErrorOutputExists  = errors.New("Output file already exists")
	ErrorInvalidState  = errors.New("HWP state must be 0 or 1")
)
