package canvas

import (
	"image"
	"image/color"
)

// LineCap specifies how stroked line endpoints are rendered.
type LineCap uint8

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota

	// LineCapRound ends the stroke with a semicircle centered on the endpoint.
	LineCapRound

	// LineCapSquare extends the stroke past the endpoint by half the line width.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// Context is the stateful drawing handle bound to a Target.
//
// It exposes path construction, fill/stroke with configurable style, image
// blits, a rectangular clear, and an affine transform stack. Save and
// Restore push and pop the full drawing state (transform, colors, line
// style, global alpha); balancing the two is the caller's responsibility,
// and no depth is tracked here.
//
// Failures inside a Context implementation (degenerate target, unsupported
// image) are the implementation's concern; none of the methods return
// errors.
type Context interface {
	// Save pushes the current drawing state onto the state stack.
	Save()

	// Restore pops the most recently saved state. Restoring with an empty
	// stack is a no-op.
	Restore()

	// Translate moves the origin of the coordinate system.
	Translate(x, y float64)

	// Rotate rotates the coordinate system by angle radians.
	Rotate(angle float64)

	// Scale scales the coordinate system.
	Scale(x, y float64)

	// ClearRect erases the given rectangle to transparent.
	ClearRect(x, y, w, h float64)

	// BeginPath discards the current path and starts a new one.
	BeginPath()

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line segment from the current point. With no current
	// subpath it behaves like MoveTo.
	LineTo(x, y float64)

	// Arc adds a circular arc centered at (x, y) from startAngle to
	// endAngle, in radians.
	Arc(x, y, radius, startAngle, endAngle float64)

	// Fill fills the current path with the fill color. The path is kept.
	Fill()

	// Stroke strokes the current path with the stroke color, line width and
	// line cap. The path is kept.
	Stroke()

	// SetFillColor sets the color used by Fill.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// SetLineCap sets the stroke endpoint style.
	SetLineCap(cap LineCap)

	// GlobalAlpha returns the current global opacity in [0, 1].
	GlobalAlpha() float64

	// SetGlobalAlpha sets the global opacity applied to fills, strokes and
	// blits.
	SetGlobalAlpha(a float64)

	// DrawImage blits an image at its natural size with its top-left corner
	// at (x, y).
	DrawImage(img image.Image, x, y float64)

	// DrawImageSized blits an image stretched to w x h pixels with its
	// top-left corner at (x, y).
	DrawImageSized(img image.Image, x, y, w, h float64)
}

// Target is a fixed-size 2D pixel buffer that can be drawn into through its
// Context and exported as an encoded image.
//
// Changing either dimension discards all pixel content and resets the
// drawing state, per raster-target semantics.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// SetWidth resizes the target to the given width.
	SetWidth(w int)

	// SetHeight resizes the target to the given height.
	SetHeight(h int)

	// Context returns the drawing context bound to this target. The same
	// context is returned for the lifetime of the target.
	Context() Context

	// DataURL returns the target content as a data-URI encoded image
	// string, PNG by default.
	DataURL() (string, error)
}
