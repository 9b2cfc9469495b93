package render

import "errors"

// memSink collects written samples in memory for inspection.
// It implements the pcm.Writer interface.
type memSink struct {
	samples []int8
	writes  int
	closed  bool
	failAt  int // fail the nth write when > 0
}

var errSinkFailed = errors.New("sink failed")

func (m *memSink) WriteSamples(samples []int8) error {
	m.writes++
	if m.failAt > 0 && m.writes >= m.failAt {
		return errSinkFailed
	}
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}
