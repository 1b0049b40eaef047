package director

import (
	"fmt"

	"github.com/ivlev/videoforge/internal/frame"
)

// Presentation timing, seconds.
const (
	presentationTitle = 5.0
	presentationSlide = 6.0
	presentationEnd   = 4.0
	subtitleFrom      = 0.8
	subtitleUntil     = 1.3
	slideEnter        = 0.4
	slideOffset       = 40.0 // px
	accentGrow        = 0.5
	accentWidth       = 80.0 // px

	presentationSubtitle = "プレゼンテーション"
	presentationThanks   = "ありがとうございました"
)

var titleSpring = frame.SpringConfig{Damping: 15, Mass: 0.8}

// Presentation is a slide deck with a dark or light theme.
func Presentation(p *Props) (*Template, error) {
	theme, ok := themes[orDefault(p.Theme, DefaultTheme)]
	if !ok {
		return nil, fmt.Errorf("%s: unknown theme %q", TemplatePresentation, p.Theme)
	}
	b, err := newBuilder(TemplatePresentation, p.FPS, theme.Background)
	if err != nil {
		return nil, err
	}
	fps := p.FPS

	b.next("title", presentationTitle, "", func(local int) []Element {
		title := text("title", p.Title, theme.Title, 64)
		title.Scale = frame.Spring(local, fps, titleSpring)
		sub := text("subtitle", orDefault(p.Subtitle, presentationSubtitle), theme.Body, 28)
		sub.Opacity = b.ramp(local, subtitleFrom, subtitleUntil, [2]float64{0, 1}, frame.Clamp)
		return []Element{title, sub}
	})

	total := len(p.Slides)
	for i, s := range p.Slides {
		index := i + 1
		b.next(fmt.Sprintf("slide_%d", index), presentationSlide, theme.SlideBg, func(local int) []Element {
			opacity := b.ramp(local, 0, slideEnter, [2]float64{0, 1}, frame.ClampRight)

			counter := text("counter", fmt.Sprintf("%d / %d", index, total), theme.Accent, 18)
			counter.Opacity = opacity

			heading := text("heading", s.Heading, theme.Heading, 48)
			heading.Opacity = opacity
			heading.TranslateX = b.ramp(local, 0, slideEnter, [2]float64{slideOffset, 0}, frame.ClampRight)

			accent := bar("accent", theme.Accent, b.ramp(local, 0, accentGrow, [2]float64{0, accentWidth}, frame.ClampRight))

			body := text("body", s.Body, theme.Body, 32)
			body.Opacity = b.ramp(local, bodyFrom, bodyUntil, [2]float64{0, 1}, frame.Clamp)
			return []Element{counter, heading, accent, body}
		})
	}

	b.next("end", presentationEnd, theme.EndBg, func(local int) []Element {
		thanks := text("thanks", presentationThanks, theme.Title, 56)
		thanks.Opacity = b.ramp(local, 0, cardFade, [2]float64{0, 1}, frame.ClampRight)
		return []Element{thanks}
	})

	return b.t, nil
}
