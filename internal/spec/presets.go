package spec

import "strings"

// PlatformPreset describes the encoding targets of a publishing platform.
type PlatformPreset struct {
	Name         string
	Width        int
	Height       int
	FPS          int
	Codec        string
	Bitrate      string
	AudioBitrate string
	MaxDuration  float64 // seconds, 0 = unlimited
	AspectRatio  string
}

var presets = map[string]PlatformPreset{
	"youtube": {
		Name: "YouTube", Width: 1920, Height: 1080, FPS: 30,
		Codec: "libx264", Bitrate: "8M", AudioBitrate: "192k", AspectRatio: "16:9",
	},
	"youtube_short": {
		Name: "YouTube Shorts", Width: 1080, Height: 1920, FPS: 30,
		Codec: "libx264", Bitrate: "6M", AudioBitrate: "192k", MaxDuration: 60, AspectRatio: "9:16",
	},
	"tiktok": {
		Name: "TikTok", Width: 1080, Height: 1920, FPS: 30,
		Codec: "libx264", Bitrate: "6M", AudioBitrate: "128k", MaxDuration: 180, AspectRatio: "9:16",
	},
	"instagram_reel": {
		Name: "Instagram Reels", Width: 1080, Height: 1920, FPS: 30,
		Codec: "libx264", Bitrate: "6M", AudioBitrate: "128k", MaxDuration: 90, AspectRatio: "9:16",
	},
	"instagram_post": {
		Name: "Instagram Post", Width: 1080, Height: 1080, FPS: 30,
		Codec: "libx264", Bitrate: "5M", AudioBitrate: "128k", MaxDuration: 60, AspectRatio: "1:1",
	},
	"twitter": {
		Name: "Twitter/X", Width: 1920, Height: 1080, FPS: 30,
		Codec: "libx264", Bitrate: "5M", AudioBitrate: "128k", MaxDuration: 140, AspectRatio: "16:9",
	},
}

// PresetFor looks up a platform preset by name, case-insensitively.
func PresetFor(platform string) (PlatformPreset, bool) {
	p, ok := presets[strings.ToLower(platform)]
	return p, ok
}

// ApplyPreset returns a copy of v whose resolution and fps follow the preset.
// Scenes are shared with v; they are never mutated.
func (v *VideoSpec) ApplyPreset(p PlatformPreset) *VideoSpec {
	out := *v
	out.Video.Resolution = []int{p.Width, p.Height}
	out.Video.FPS = p.FPS
	return &out
}

// ExceedsPreset reports whether the video is longer than the platform allows.
func (v *VideoSpec) ExceedsPreset(p PlatformPreset) bool {
	return p.MaxDuration > 0 && v.TotalDuration() > p.MaxDuration
}
