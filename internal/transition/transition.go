// Package transition computes scene-level opacity during the entry and exit
// windows of a scene. Transitions live inside the owning scene's frame range
// and never add frames to the timeline.
package transition

import (
	"errors"
	"fmt"

	"github.com/ivlev/videoforge/internal/frame"
	"github.com/ivlev/videoforge/internal/spec"
)

// ErrUnknownTransitionKind is recoverable: the scene renders at opacity 1.
var ErrUnknownTransitionKind = errors.New("unknown transition kind")

// SceneOpacity returns the scene opacity at localFrame.
//
// Only fade blends. crossfade, wipe_left, wipe_right and dissolve are accepted
// but resolve to opacity 1 at this level; encoders can still realise them
// through Xfade. When the entry and exit windows overlap on a short scene the
// two ramps are multiplied.
func SceneOpacity(s *spec.Scene, localFrame, durationInFrames, fps int) (float64, error) {
	if err := check(s.TransitionIn); err != nil {
		return 1, fmt.Errorf("transition_in: %w", err)
	}
	if err := check(s.TransitionOut); err != nil {
		return 1, fmt.Errorf("transition_out: %w", err)
	}
	if s.TransitionIn != spec.TransitionFade && s.TransitionOut != spec.TransitionFade {
		return 1, nil
	}

	tf, err := frame.ToFrames(s.TransitionDuration, fps)
	if err != nil {
		return 1, fmt.Errorf("transition_duration: %w", err)
	}

	opacity := 1.0
	if s.TransitionIn == spec.TransitionFade && localFrame < tf {
		opacity *= frame.Ramp(localFrame, 0, tf, [2]float64{0, 1}, frame.ClampRight)
	}
	if s.TransitionOut == spec.TransitionFade && localFrame > durationInFrames-tf {
		opacity *= frame.Ramp(localFrame, durationInFrames-tf, durationInFrames, [2]float64{1, 0}, frame.ClampLeft)
	}
	return clamp01(opacity), nil
}

func check(t spec.Transition) error {
	if t == "" || t.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTransitionKind, t)
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
