// Package frame holds the numeric primitives every timeline computation is
// built on: seconds to frame conversion, ranged interpolation and the spring
// ease. All functions are pure and safe for concurrent use.
package frame

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDuration is returned for negative durations or non-positive fps.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrDegenerateRange is returned when an interpolation domain has zero width.
	ErrDegenerateRange = errors.New("degenerate interpolation range")
)

// ToFrames converts seconds to a whole number of frames.
//
// Rounding is half away from zero (math.Round). Every seconds-to-frames
// conversion in the repository goes through here so scene boundaries stay
// reproducible across runs and workers.
func ToFrames(seconds float64, fps int) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: fps %d", ErrInvalidDuration, fps)
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, seconds)
	}
	return int(math.Round(seconds * float64(fps))), nil
}

// MustFrames is ToFrames for compile-time constants and already validated fps.
// It panics on invalid input.
func MustFrames(seconds float64, fps int) int {
	n, err := ToFrames(seconds, fps)
	if err != nil {
		panic(err)
	}
	return n
}

// Seconds converts a frame count back to seconds.
func Seconds(frames, fps int) float64 {
	if fps <= 0 {
		return 0
	}
	return float64(frames) / float64(fps)
}
