package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/videoforge/internal/spec"
	"github.com/ivlev/videoforge/internal/timeline"
)

func scene(in, out spec.Transition, duration, transition float64) *spec.Scene {
	s := spec.DefaultScene()
	s.TransitionIn, s.TransitionOut = in, out
	s.Duration, s.TransitionDuration = duration, transition
	return &s
}

func TestSceneOpacityFade(t *testing.T) {
	s := scene(spec.TransitionFade, spec.TransitionFade, 4, 0.5)

	tests := []struct {
		local int
		want  float64
	}{
		{0, 0},
		{5, 1.0 / 3},
		{15, 1},
		{60, 1},
		{105, 1},
		{110, 2.0 / 3},
		{120, 0},
	}

	for _, tt := range tests {
		got, err := SceneOpacity(s, tt.local, 120, 30)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "frame %d", tt.local)
	}
}

func TestSceneOpacityMultipliesOverlap(t *testing.T) {
	// 10 frames with 8-frame fades on both ends
	s := scene(spec.TransitionFade, spec.TransitionFade, 1, 0.8)

	got, err := SceneOpacity(s, 4, 10, 10)
	require.NoError(t, err)
	in := 4.0 / 8
	out := 1 - 2.0/8
	assert.InDelta(t, in*out, got, 1e-9)
}

func TestSceneOpacityGapKinds(t *testing.T) {
	for _, kind := range []spec.Transition{
		spec.TransitionNone, spec.TransitionCrossfade, spec.TransitionWipeLeft,
		spec.TransitionWipeRight, spec.TransitionDissolve,
	} {
		s := scene(kind, kind, 2, 0.5)
		for _, f := range []int{0, 7, 59, 60} {
			got, err := SceneOpacity(s, f, 60, 30)
			require.NoError(t, err)
			assert.Equal(t, 1.0, got, "%s frame %d", kind, f)
		}
	}
}

func TestSceneOpacityUnknownKind(t *testing.T) {
	got, err := SceneOpacity(scene("zoom", spec.TransitionNone, 2, 0.5), 0, 60, 30)
	require.ErrorIs(t, err, ErrUnknownTransitionKind)
	assert.Equal(t, 1.0, got)
}

func TestSceneOpacityZeroDuration(t *testing.T) {
	s := scene(spec.TransitionFade, spec.TransitionNone, 2, 0)
	got, err := SceneOpacity(s, 0, 60, 30)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestXfade(t *testing.T) {
	tests := []struct {
		in     spec.Transition
		want   string
		wantOK bool
	}{
		{spec.TransitionNone, "", false},
		{spec.TransitionFade, "fade", true},
		{spec.TransitionCrossfade, "fade", true},
		{spec.TransitionWipeLeft, "wipeleft", true},
		{spec.TransitionWipeRight, "wiperight", true},
		{spec.TransitionDissolve, "dissolve", true},
		{"spiral", "fade", true},
	}

	for _, tt := range tests {
		got, ok := Xfade(tt.in)
		assert.Equal(t, tt.wantOK, ok, string(tt.in))
		assert.Equal(t, tt.want, got, string(tt.in))
	}
}

func TestCuts(t *testing.T) {
	v := spec.Default()
	a := *scene(spec.TransitionNone, spec.TransitionWipeLeft, 4, 0.5)
	b := *scene(spec.TransitionNone, spec.TransitionNone, 3, 0.5)
	c := *scene(spec.TransitionDissolve, spec.TransitionNone, 2, 1)
	v.Scenes = []spec.Scene{a, b, c}

	tl, err := timeline.Build(&v)
	require.NoError(t, err)

	cuts, err := Cuts(tl)
	require.NoError(t, err)
	require.Len(t, cuts, 2)

	assert.Equal(t, Cut{From: "scene_0", To: "scene_1", Transition: spec.TransitionWipeLeft, Frame: 120, Frames: 15}, cuts[0])
	assert.Equal(t, "xfade=transition=wipeleft:duration=0.500:offset=3.500", cuts[0].Filter(30))

	assert.Equal(t, spec.TransitionDissolve, cuts[1].Transition)
	assert.Equal(t, 210, cuts[1].Frame)
	assert.Equal(t, 30, cuts[1].Frames)
}
