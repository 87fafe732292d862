package canvas

import (
	"image/color"
	"math"
)

// CircleStyle specifies optional parameters for DrawCircle.
// Nil fields are skipped; fill and stroke are independent and may both
// apply to the same path.
type CircleStyle struct {
	// Fill fills the circle with this color. Nil means no fill.
	Fill color.Color

	// Stroke outlines the circle with this color at line width 1.
	// Nil means no stroke.
	Stroke color.Color

	// Alpha temporarily overrides the context's global opacity for this
	// call only. Nil keeps the current value. See Alpha.
	Alpha *float64
}

// LineStyle specifies optional parameters for DrawLine and DrawLineScaled.
type LineStyle struct {
	// Width is the stroke width. Zero means 1.
	Width float64

	// Color overrides the context's stroke color. Nil keeps the current one.
	Color color.Color

	// Alpha temporarily overrides the context's global opacity for this
	// call only. Nil keeps the current value. See Alpha.
	Alpha *float64
}

// DrawCircle draws a circular path at the given position and radius.
// Circle coordinates are not pixel-snapped, unlike image blits.
//
// When style.Alpha is set, the previous global opacity is restored after
// the call even if neither fill nor stroke is requested.
func (s *Surface) DrawCircle(at Point, radius float64, style CircleStyle) {
	s.withAlpha(style.Alpha, func() {
		s.ctx.BeginPath()
		s.ctx.Arc(at.X, at.Y, radius, 0, 2*math.Pi)
		if style.Fill != nil {
			s.ctx.SetFillColor(style.Fill)
			s.ctx.Fill()
		}
		if style.Stroke != nil {
			s.ctx.SetLineWidth(1)
			s.ctx.SetStrokeColor(style.Stroke)
			s.ctx.Stroke()
		}
	})
}

// DrawLine strokes a single connected path visiting every point in
// sequence, with round line caps. Fewer than 2 points is a no-op: no
// context call is made at all, the alpha override included.
func (s *Surface) DrawLine(points []Point, style LineStyle) {
	if len(points) < 2 {
		return
	}
	s.withAlpha(style.Alpha, func() {
		if style.Color != nil {
			s.ctx.SetStrokeColor(style.Color)
		}
		width := style.Width
		if width == 0 {
			width = 1
		}
		s.ctx.SetLineWidth(width)
		s.ctx.SetLineCap(LineCapRound)
		s.ctx.BeginPath()
		s.ctx.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			s.ctx.LineTo(p.X, p.Y)
		}
		s.ctx.Stroke()
	})
}

// DrawLineScaled multiplies every point coordinate and the line width by
// the current scale factor, then delegates to DrawLine. The input slice is
// not modified; scaling happens on a copy.
func (s *Surface) DrawLineScaled(points []Point, style LineStyle) {
	if len(points) < 2 {
		return
	}
	scaled := make([]Point, len(points))
	for i, p := range points {
		scaled[i] = p.Mul(s.scale)
	}
	width := style.Width
	if width == 0 {
		width = 1
	}
	style.Width = width * s.scale
	s.DrawLine(scaled, style)
}
