package frame

import "math"

// SpringConfig describes a mass on a spring pulled from 0 towards 1.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring matches the stiffness/damping/mass the templates start from.
var DefaultSpring = SpringConfig{Stiffness: 100, Damping: 10, Mass: 1}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultSpring.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = DefaultSpring.Damping
	}
	if c.Mass <= 0 {
		c.Mass = DefaultSpring.Mass
	}
	return c
}

// Spring samples the spring position at the given frame. It starts at 0 with
// zero velocity and settles at 1. The value is computed from the analytic
// solution of the damped oscillator, so any frame can be sampled directly.
// Negative frames return 0.
func Spring(frameNum, fps int, cfg SpringConfig) float64 {
	if frameNum <= 0 || fps <= 0 {
		return 0
	}
	cfg = cfg.withDefaults()
	t := float64(frameNum) / float64(fps)

	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))

	// y is the signed distance to the target: y(0) = -1, y'(0) = 0.
	const y0, v0 = -1.0, 0.0
	var y float64
	switch {
	case zeta < 1:
		wd := omega * math.Sqrt(1-zeta*zeta)
		b := (v0 + zeta*omega*y0) / wd
		y = math.Exp(-zeta*omega*t) * (y0*math.Cos(wd*t) + b*math.Sin(wd*t))
	case zeta == 1:
		b := v0 + omega*y0
		y = (y0 + b*t) * math.Exp(-omega*t)
	default:
		s := math.Sqrt(zeta*zeta - 1)
		r1 := -omega * (zeta - s)
		r2 := -omega * (zeta + s)
		c2 := (v0 - r1*y0) / (r2 - r1)
		c1 := y0 - c2
		y = c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
	return 1 + y
}
