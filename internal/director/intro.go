package director

import (
	"math"

	"github.com/ivlev/videoforge/internal/frame"
)

// YouTube intro timing, seconds. The layers overlap.
const (
	introLength        = 7.0
	introTitleFrom     = 0.8
	introTitleLength   = 5.0
	introFadeFrom      = 5.5
	introFadeLength    = 1.5
	introTitleFade     = 0.6
	introTitleRise     = 0.5
	introSubtitleFrom  = 0.5
	introSubtitleUntil = 1.0
	introZoomLength    = 3.0
)

var introLineSpring = frame.SpringConfig{Damping: 20}

// YouTubeIntro is a 7 second layered intro: an animated background, a title
// card entering at 0.8 s and a fade to black over the last 1.5 s.
func YouTubeIntro(p *Props) (*Template, error) {
	b, err := newBuilder(TemplateYouTubeIntro, p.FPS, "#0a0a1a")
	if err != nil {
		return nil, err
	}
	accent := orDefault(p.AccentColor, DefaultAccent)
	fps := p.FPS

	b.at("background", 0, introLength, "", func(local int) []Element {
		bg := Element{Name: "gradient", Color: "#1a1a3e", Opacity: 1}
		bg.Angle = b.ramp(local, 0, introLength, [2]float64{0, 360}, frame.Extend)
		bg.Scale = b.ramp(local, 0, introZoomLength, [2]float64{1, 1.2}, frame.ClampRight)

		// glow center in percent of the frame
		glow := Element{Name: "glow", Color: accent + "22", Opacity: 1, Scale: 1}
		glow.TranslateX = 50 + math.Sin(float64(local)/30)*20
		glow.TranslateY = 50 + math.Cos(float64(local)/25)*15
		return []Element{bg, glow}
	})

	b.at("title", introTitleFrom, introTitleLength, "", func(local int) []Element {
		title := text("title", p.Title, "#FFFFFF", 72)
		title.Opacity = b.ramp(local, 0, introTitleFade, [2]float64{0, 1}, frame.ClampRight)
		title.TranslateY = b.ramp(local, 0, introTitleRise, [2]float64{30, 0}, frame.ClampRight)

		line := bar("line", accent, frame.Spring(local, fps, introLineSpring)*200)

		out := []Element{title, line}
		if p.Subtitle != "" {
			sub := text("subtitle", p.Subtitle, "#888888", 28)
			sub.Opacity = b.ramp(local, introSubtitleFrom, introSubtitleUntil, [2]float64{0, 1}, frame.Clamp)
			out = append(out, sub)
		}
		return out
	})

	b.at("fade_out", introFadeFrom, introFadeLength, "", func(local int) []Element {
		veil := Element{Name: "veil", Color: "#000000", Scale: 1}
		veil.Opacity = b.ramp(local, 0, introFadeLength, [2]float64{0, 1}, frame.ClampRight)
		return []Element{veil}
	})

	return b.t, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
