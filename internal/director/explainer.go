package director

import (
	"fmt"

	"github.com/ivlev/videoforge/internal/frame"
)

// Text explainer timing, seconds.
const (
	explainerIntro   = 3.0
	explainerSection = 6.0
	explainerOutro   = 4.0
	headingFade      = 0.4
	bodyFrom         = 0.3
	bodyUntil        = 0.7
	bodyRise         = 20.0 // px
	cardFade         = 0.5

	summaryText = "まとめ"
)

var explainerLineSpring = frame.SpringConfig{Damping: 15, Mass: 0.5}

// TextExplainer shows a title, one heading/body section per entry and a
// summary card. Heading and body reveal on staggered windows.
func TextExplainer(p *Props) (*Template, error) {
	b, err := newBuilder(TemplateTextExplainer, p.FPS, "#0d1117")
	if err != nil {
		return nil, err
	}
	fps := p.FPS

	b.next("intro", explainerIntro, "", func(local int) []Element {
		title := text("title", p.Title, "#58a6ff", 64)
		title.Opacity = b.ramp(local, 0, cardFade, [2]float64{0, 1}, frame.ClampRight)
		line := bar("line", "#58a6ff", frame.Spring(local, fps, explainerLineSpring)*300)
		return []Element{title, line}
	})

	for i, s := range p.Sections {
		index := i + 1
		b.next(fmt.Sprintf("section_%d", index), explainerSection, "", func(local int) []Element {
			head := b.ramp(local, 0, headingFade, [2]float64{0, 1}, frame.ClampRight)

			label := text("label", fmt.Sprintf("Point %d", index), "#58a6ff", 24)
			heading := text("heading", s.Heading, "#c9d1d9", 48)
			rule := bar("rule", "#58a6ff", 60)
			label.Opacity, heading.Opacity, rule.Opacity = head, head, head

			body := text("body", s.Body, "#8b949e", 32)
			body.Opacity = b.ramp(local, bodyFrom, bodyUntil, [2]float64{0, 1}, frame.Clamp)
			body.TranslateY = b.ramp(local, bodyFrom, bodyUntil, [2]float64{bodyRise, 0}, frame.Clamp)
			return []Element{label, heading, rule, body}
		})
	}

	b.next("outro", explainerOutro, "#161b22", func(local int) []Element {
		summary := text("summary", summaryText, "#FFFFFF", 56)
		summary.Opacity = b.ramp(local, 0, cardFade, [2]float64{0, 1}, frame.ClampRight)
		return []Element{summary}
	})

	return b.t, nil
}
