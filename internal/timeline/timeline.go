// Package timeline lays scenes out on an absolute frame axis.
package timeline

import (
	"fmt"
	"sort"

	"github.com/ivlev/videoforge/internal/frame"
	"github.com/ivlev/videoforge/internal/spec"
)

// Entry places one scene on the timeline. The range is [StartFrame, EndFrame).
type Entry struct {
	Index            int
	ID               string
	Scene            *spec.Scene
	StartFrame       int
	DurationInFrames int
}

func (e Entry) EndFrame() int {
	return e.StartFrame + e.DurationInFrames
}

func (e Entry) Contains(f int) bool {
	return f >= e.StartFrame && f < e.EndFrame()
}

// LocalFrame converts an absolute frame into the scene's own frame axis.
func (e Entry) LocalFrame(f int) int {
	return f - e.StartFrame
}

// Timeline is the ordered, gap-free sequence of scene entries.
type Timeline struct {
	FPS     int
	Entries []Entry
	total   int
}

// Build folds the scene list into contiguous frame ranges. Scene i+1 starts
// exactly where scene i ends; transitions never add frames.
func Build(v *spec.VideoSpec) (*Timeline, error) {
	fps := v.Video.FPS
	if fps <= 0 {
		return nil, fmt.Errorf("build timeline: %w: fps %d", frame.ErrInvalidDuration, fps)
	}

	t := &Timeline{
		FPS:     fps,
		Entries: make([]Entry, 0, len(v.Scenes)),
	}

	current := 0
	for i := range v.Scenes {
		s := &v.Scenes[i]
		if s.Duration <= 0 {
			return nil, fmt.Errorf("build timeline: scene %d (%s): %w: duration %v",
				i, s.EffectiveID(i), frame.ErrInvalidDuration, s.Duration)
		}
		n, err := frame.ToFrames(s.Duration, fps)
		if err != nil {
			return nil, fmt.Errorf("build timeline: scene %d (%s): %w", i, s.EffectiveID(i), err)
		}
		if n == 0 {
			return nil, fmt.Errorf("build timeline: scene %d (%s): %w: %vs rounds to zero frames at %d fps",
				i, s.EffectiveID(i), frame.ErrInvalidDuration, s.Duration, fps)
		}

		t.Entries = append(t.Entries, Entry{
			Index:            i,
			ID:               s.EffectiveID(i),
			Scene:            s,
			StartFrame:       current,
			DurationInFrames: n,
		})
		current += n
	}
	t.total = current

	return t, nil
}

// TotalFrames is the render range length: frames [0, TotalFrames()).
func (t *Timeline) TotalFrames() int {
	return t.total
}

// Locate returns the scene entry owning the absolute frame.
func (t *Timeline) Locate(f int) (Entry, bool) {
	if f < 0 || f >= t.total {
		return Entry{}, false
	}
	i := sort.Search(len(t.Entries), func(i int) bool {
		return t.Entries[i].EndFrame() > f
	})
	if i == len(t.Entries) {
		return Entry{}, false
	}
	return t.Entries[i], true
}

// Neighbors returns the entries before and after entry i, if any.
func (t *Timeline) Neighbors(i int) (prev, next *Entry) {
	if i > 0 && i-1 < len(t.Entries) {
		prev = &t.Entries[i-1]
	}
	if i >= 0 && i+1 < len(t.Entries) {
		next = &t.Entries[i+1]
	}
	return prev, next
}
