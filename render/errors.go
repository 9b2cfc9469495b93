package render

import "errors"

var (
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidTempo        = errors.New("tempo must be positive")
	ErrInvalidPolyphonyCap = errors.New("polyphony cap must be at least 1")
	ErrInvalidPitchRows    = errors.New("pitch row count must be at least 1")
	ErrOffsetOutOfRange    = errors.New("scan offset outside image")
)
