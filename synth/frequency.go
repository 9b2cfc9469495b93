// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// KeyToFrequency converts a piano key number to its frequency in Hz
// using equal temperament anchored at key 49 = 440 Hz (A4).
// The formula extrapolates cleanly outside the physical 1..88 range,
// so no bounds checking is done.
func KeyToFrequency(n int) float64 {
	return 440.0 * math.Pow(2, float64(n-49)/12.0)
}
