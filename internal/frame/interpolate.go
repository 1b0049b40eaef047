package frame

import "fmt"

// Extrapolation selects what happens outside the input range.
type Extrapolation uint8

const (
	Extend     Extrapolation = 0
	ClampLeft  Extrapolation = 1 << 0
	ClampRight Extrapolation = 1 << 1
	Clamp                    = ClampLeft | ClampRight
)

// Interpolate maps x from the input range onto the output range linearly.
// Outside the input range the value is either clamped to the nearest output
// bound or extrapolated, per side.
func Interpolate(x float64, in, out [2]float64, ex Extrapolation) (float64, error) {
	if in[0] == in[1] {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrDegenerateRange, in[0], in[1])
	}

	lo, hi := in[0], in[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo && ex&ClampLeft != 0 {
		x = lo
	}
	if x > hi && ex&ClampRight != 0 {
		x = hi
	}

	t := (x - in[0]) / (in[1] - in[0])
	return lerp(out[0], out[1], t), nil
}

// Ramp is Interpolate over frame numbers where a zero-width window is
// treated as a step: the output jumps to out[1] at the window start.
func Ramp(x, start, end int, out [2]float64, ex Extrapolation) float64 {
	v, err := Interpolate(float64(x), [2]float64{float64(start), float64(end)}, out, ex)
	if err != nil {
		if x < start {
			return out[0]
		}
		return out[1]
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
