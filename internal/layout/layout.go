// Package layout maps overlay position keywords and style attributes to an
// anchor box and a static text style.
package layout

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ivlev/videoforge/internal/spec"
)

// ErrUnknownPosition is recoverable: the overlay is placed at bottom_center.
var ErrUnknownPosition = errors.New("unknown overlay position")

type VerticalEdge uint8

const (
	Top VerticalEdge = iota
	Bottom
)

type HorizontalEdge uint8

const (
	Left HorizontalEdge = iota
	Right
)

// Edge offsets as fractions of the frame size.
const (
	TopInset    = 0.05
	BottomInset = 0.08
	SideInset   = 0.05
	Middle      = 0.5
)

// Box anchors an overlay against the frame edges. Offsets are fractions of
// the frame size, shifts are fractions of the box size applied after
// anchoring (translate(-50%, -50%) is ShiftX = ShiftY = -0.5).
type Box struct {
	Vertical   VerticalEdge
	Horizontal HorizontalEdge
	OffsetY    float64
	OffsetX    float64
	ShiftX     float64
	ShiftY     float64
}

var anchors = map[spec.Position]Box{
	spec.PositionCenter:       {Vertical: Top, Horizontal: Left, OffsetY: Middle, OffsetX: Middle, ShiftX: -0.5, ShiftY: -0.5},
	spec.PositionTopCenter:    {Vertical: Top, Horizontal: Left, OffsetY: TopInset, OffsetX: Middle, ShiftX: -0.5},
	spec.PositionBottomCenter: {Vertical: Bottom, Horizontal: Left, OffsetY: BottomInset, OffsetX: Middle, ShiftX: -0.5},
	spec.PositionTopLeft:      {Vertical: Top, Horizontal: Left, OffsetY: TopInset, OffsetX: SideInset},
	spec.PositionTopRight:     {Vertical: Top, Horizontal: Right, OffsetY: TopInset, OffsetX: SideInset},
	spec.PositionBottomLeft:   {Vertical: Bottom, Horizontal: Left, OffsetY: BottomInset, OffsetX: SideInset},
	spec.PositionBottomRight:  {Vertical: Bottom, Horizontal: Right, OffsetY: BottomInset, OffsetX: SideInset},
}

// Anchor returns the box for a position keyword. Unknown keywords get the
// bottom_center box together with ErrUnknownPosition.
func Anchor(p spec.Position) (Box, error) {
	if b, ok := anchors[p]; ok {
		return b, nil
	}
	return anchors[spec.PositionBottomCenter], fmt.Errorf("%w: %q", ErrUnknownPosition, p)
}

// Place returns the top-left pixel of a boxW x boxH box in a frameW x frameH
// frame.
func (b Box) Place(frameW, frameH, boxW, boxH int) image.Point {
	fw, fh := float64(frameW), float64(frameH)
	bw, bh := float64(boxW), float64(boxH)

	x := fw * b.OffsetX
	if b.Horizontal == Right {
		x = fw - x - bw
	}
	y := fh * b.OffsetY
	if b.Vertical == Bottom {
		y = fh - y - bh
	}
	x += b.ShiftX * bw
	y += b.ShiftY * bh

	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}
