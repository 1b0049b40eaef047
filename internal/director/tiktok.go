package director

import (
	"fmt"
	"math"

	"github.com/ivlev/videoforge/internal/frame"
)

// TikTok short timing, seconds.
const (
	hookLength   = 3.0
	pointLength  = 4.0
	ctaLength    = 2.0
	hookFade     = 0.3
	pointEnter   = 0.3
	pointSlideIn = 100.0 // px
	ctaPulse     = 0.05
	ctaPeriod    = 0.15

	ctaText = "フォローしてね！"
)

var hookSpring = frame.SpringConfig{Damping: 12, Mass: 0.8}

// TikTokShort is a vertical short: a hook with the title, one slide per
// point and a pulsing call to action.
func TikTokShort(p *Props) (*Template, error) {
	b, err := newBuilder(TemplateTikTokShort, p.FPS, "#0a0a0a")
	if err != nil {
		return nil, err
	}
	accent := orDefault(p.AccentColor, DefaultAccent)
	fps := p.FPS

	b.next("hook", hookLength, accent, func(local int) []Element {
		title := text("title", p.Title, "#FFFFFF", 80)
		title.Scale = frame.Spring(local, fps, hookSpring)
		title.Opacity = b.ramp(local, 0, hookFade, [2]float64{0, 1}, frame.ClampRight)
		return []Element{title}
	})

	for i, point := range p.Points {
		index := i + 1
		b.next(fmt.Sprintf("point_%d", index), pointLength, "#1a1a2e", func(local int) []Element {
			dx := b.ramp(local, 0, pointEnter, [2]float64{pointSlideIn, 0}, frame.ClampRight)
			opacity := b.ramp(local, 0, pointEnter, [2]float64{0, 1}, frame.ClampRight)

			number := text("number", fmt.Sprint(index), accent, 120)
			body := text("text", point, "#FFFFFF", 48)
			for _, e := range []*Element{&number, &body} {
				e.TranslateX = dx
				e.Opacity = opacity
			}
			return []Element{number, body}
		})
	}

	b.next("cta", ctaLength, accent, func(local int) []Element {
		cta := text("cta", ctaText, "#FFFFFF", 64)
		cta.Scale = 1 + math.Sin(float64(local)/(float64(fps)*ctaPeriod))*ctaPulse
		return []Element{cta}
	})

	return b.t, nil
}
