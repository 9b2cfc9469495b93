package imgtone

import "errors"

var (
	ErrSamePath      = errors.New("input and output paths are the same file")
	ErrUnknownFormat = errors.New("unknown output format")
)
