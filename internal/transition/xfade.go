package transition

import (
	"fmt"

	"github.com/ivlev/videoforge/internal/frame"
	"github.com/ivlev/videoforge/internal/spec"
	"github.com/ivlev/videoforge/internal/timeline"
)

var xfadeNames = map[spec.Transition]string{
	spec.TransitionFade:      "fade",
	spec.TransitionCrossfade: "fade",
	spec.TransitionWipeLeft:  "wipeleft",
	spec.TransitionWipeRight: "wiperight",
	spec.TransitionDissolve:  "dissolve",
}

// Xfade returns the ffmpeg xfade transition name for t. ok is false for
// "none"; unknown kinds map to "fade".
func Xfade(t spec.Transition) (name string, ok bool) {
	if t == spec.TransitionNone || t == "" {
		return "", false
	}
	if n, found := xfadeNames[t]; found {
		return n, true
	}
	return "fade", true
}

// Cut is a scene boundary where an external encoder joins two clips.
type Cut struct {
	From, To   string
	Transition spec.Transition
	Frame      int // absolute frame of the boundary
	Frames     int // blend length in frames, 0 for a hard cut
}

// Filter renders the xfade filter expression for the cut. The blend ends on
// the boundary frame, so the offset is the boundary minus the blend.
func (c Cut) Filter(fps int) string {
	name, ok := Xfade(c.Transition)
	if !ok || c.Frames == 0 {
		return ""
	}
	return fmt.Sprintf("xfade=transition=%s:duration=%.3f:offset=%.3f",
		name, frame.Seconds(c.Frames, fps), frame.Seconds(c.Frame-c.Frames, fps))
}

// Cuts lists the boundaries of a timeline. The transition of a boundary is
// the outgoing scene's transition_out, or the incoming scene's
// transition_in when the former is none.
func Cuts(t *timeline.Timeline) ([]Cut, error) {
	var cuts []Cut
	for i := range t.Entries {
		_, next := t.Neighbors(i)
		if next == nil {
			break
		}
		cur := t.Entries[i]

		kind, dur := cur.Scene.TransitionOut, cur.Scene.TransitionDuration
		if kind == spec.TransitionNone || kind == "" {
			kind, dur = next.Scene.TransitionIn, next.Scene.TransitionDuration
		}
		n := 0
		if kind != spec.TransitionNone && kind != "" {
			var err error
			if n, err = frame.ToFrames(dur, t.FPS); err != nil {
				return nil, fmt.Errorf("cut %s -> %s: %w", cur.ID, next.ID, err)
			}
			n = min(n, cur.DurationInFrames)
		}

		cuts = append(cuts, Cut{
			From:       cur.ID,
			To:         next.ID,
			Transition: kind,
			Frame:      next.StartFrame,
			Frames:     n,
		})
	}
	return cuts, nil
}
