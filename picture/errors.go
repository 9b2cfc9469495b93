package picture

import "errors"

var (
	ErrDecodeFailed = errors.New("could not decode image")
)
