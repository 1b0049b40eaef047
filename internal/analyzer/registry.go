package analyzer

import (
	"fmt"
	"image"
	"image/color"
)

// NewChecker creates a checker based on the specified variant.
func NewChecker(variant string) (Checker, error) {
	switch variant {
	case "contrast", "":
		return NewContrastChecker(), nil
	case "none", "off":
		return noCheck{}, nil
	default:
		return nil, fmt.Errorf("unknown legibility checker: %s", variant)
	}
}

type noCheck struct{}

func (noCheck) Assess(_ image.Image, rect image.Rectangle, _ color.Color) Assessment {
	return Assessment{Rect: rect, Legible: true}
}
