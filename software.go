package canvas

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/damajor/canvas/internal/raster"
)

// Default target dimensions used when a dimension is omitted, following the
// 2D canvas convention.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// ImageTarget is the software raster target, backed by an *image.RGBA.
// Fills and strokes are anti-aliased through the internal rasterizer; blits
// go through golang.org/x/image/draw with the context's current transform.
type ImageTarget struct {
	img *image.RGBA
	ctx *softContext
}

var _ Target = (*ImageTarget)(nil)

// NewImageTarget creates a software target with the given dimensions.
// Non-positive dimensions fall back to the defaults.
func NewImageTarget(width, height int) *ImageTarget {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	t := &ImageTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	t.ctx = &softContext{target: t, state: defaultState()}
	return t
}

// Width returns the target width in pixels.
func (t *ImageTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *ImageTarget) Height() int {
	return t.img.Bounds().Dy()
}

// SetWidth resizes the target. The resize discards all pixel content and
// resets the drawing state.
func (t *ImageTarget) SetWidth(w int) {
	t.resize(w, t.Height())
}

// SetHeight resizes the target. The resize discards all pixel content and
// resets the drawing state.
func (t *ImageTarget) SetHeight(h int) {
	t.resize(t.Width(), h)
}

func (t *ImageTarget) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	t.img = image.NewRGBA(image.Rect(0, 0, w, h))
	t.ctx.reset()
	Logger().Debug("target resized", "width", w, "height", h)
}

// Context returns the drawing context bound to this target.
func (t *ImageTarget) Context() Context {
	return t.ctx
}

// Image returns the underlying image. This is a direct reference, not a
// copy, and is invalidated by a resize.
func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

// DataURL returns the target content as a base64 PNG data URI.
func (t *ImageTarget) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, t.img); err != nil {
		Logger().Warn("png encode failed", "error", err)
		return "", err
	}
	Logger().Debug("target exported", "bytes", buf.Len())
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawState is the saveable context state.
type drawState struct {
	matrix    Matrix
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	lineCap   LineCap
	alpha     float64
}

func defaultState() drawState {
	return drawState{
		matrix:    Identity(),
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		lineCap:   LineCapButt,
		alpha:     1,
	}
}

// softContext implements Context against an ImageTarget.
//
// The current path is kept as flattened subpaths in device space: points
// are transformed by the current matrix as they are appended, so later
// transform changes do not move an already built path.
type softContext struct {
	target *ImageTarget
	state  drawState
	stack  []drawState
	path   [][]raster.Point
}

var _ Context = (*softContext)(nil)

// reset restores the context to its initial state after a resize.
func (c *softContext) reset() {
	c.state = defaultState()
	c.stack = c.stack[:0]
	c.path = nil
}

func (c *softContext) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *softContext) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *softContext) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(x, y))
}

func (c *softContext) Rotate(angle float64) {
	c.state.matrix = c.state.matrix.Multiply(Rotate(angle))
}

func (c *softContext) Scale(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(x, y))
}

// ClearRect erases the rectangle to transparent. The rectangle is mapped
// through the current transform by its corner points and cleared over its
// axis-aligned bounding box; rotation or shear therefore clears a superset
// of the exact region.
func (c *softContext) ClearRect(x, y, w, h float64) {
	corners := [4]Point{
		c.state.matrix.TransformPoint(Pt(x, y)),
		c.state.matrix.TransformPoint(Pt(x+w, y)),
		c.state.matrix.TransformPoint(Pt(x, y+h)),
		c.state.matrix.TransformPoint(Pt(x+w, y+h)),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	rect := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	rect = rect.Intersect(c.target.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.target.img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *softContext) BeginPath() {
	c.path = nil
}

func (c *softContext) MoveTo(x, y float64) {
	c.path = append(c.path, []raster.Point{c.devicePoint(x, y)})
}

func (c *softContext) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], c.devicePoint(x, y))
}

// Arc appends a flattened circular arc. With a current subpath the arc's
// start point is connected by a line segment, otherwise a new subpath
// starts there.
func (c *softContext) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * 64))
	if n < 8 {
		n = 8
	}
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		px := x + radius*math.Cos(a)
		py := y + radius*math.Sin(a)
		if i == 0 && len(c.path) == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
}

func (c *softContext) devicePoint(x, y float64) raster.Point {
	p := c.state.matrix.TransformPoint(Pt(x, y))
	return raster.Point{X: p.X, Y: p.Y}
}

// Fill fills the current path with the fill color, implicitly closing each
// subpath. The path is kept.
func (c *softContext) Fill() {
	raster.Fill(c.target.img, c.path, applyAlpha(c.state.fill, c.state.alpha))
}

// Stroke strokes the current path with the stroke color, line width and
// cap. The width is applied in device pixels. The path is kept.
func (c *softContext) Stroke() {
	width := c.state.lineWidth
	if width <= 0 {
		return
	}
	var outline [][]raster.Point
	for _, sub := range c.path {
		outline = append(outline, raster.Stroke(sub, width, strokeCap(c.state.lineCap))...)
	}
	raster.Fill(c.target.img, outline, applyAlpha(c.state.stroke, c.state.alpha))
}

func (c *softContext) SetFillColor(col color.Color) {
	c.state.fill = col
}

func (c *softContext) SetStrokeColor(col color.Color) {
	c.state.stroke = col
}

func (c *softContext) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

func (c *softContext) SetLineCap(cap LineCap) {
	c.state.lineCap = cap
}

func (c *softContext) GlobalAlpha() float64 {
	return c.state.alpha
}

func (c *softContext) SetGlobalAlpha(a float64) {
	c.state.alpha = a
}

func (c *softContext) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	c.DrawImageSized(img, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageSized blits the image stretched to w x h through the current
// transform, bilinear-interpolated, source-over. Global alpha is applied
// as a uniform source mask.
func (c *softContext) DrawImageSized(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 || w == 0 || h == 0 {
		return
	}

	// Maps source pixel coordinates to device coordinates.
	m := c.state.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(w/sw, h/sh)).
		Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))

	var opts *xdraw.Options
	if c.state.alpha < 1 {
		a := c.state.alpha
		if a < 0 {
			a = 0
		}
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(a*255 + 0.5)}),
		}
	}
	xdraw.ApproxBiLinear.Transform(c.target.img, m.Aff3(), img, b, xdraw.Over, opts)
}

// strokeCap maps the public cap style to the rasterizer's.
func strokeCap(c LineCap) raster.Cap {
	switch c {
	case LineCapRound:
		return raster.CapRound
	case LineCapSquare:
		return raster.CapSquare
	default:
		return raster.CapButt
	}
}

// applyAlpha multiplies a color by a global alpha factor. A nil color is
// treated as opaque black.
func applyAlpha(col color.Color, alpha float64) color.Color {
	if col == nil {
		col = color.Black
	}
	if alpha >= 1 {
		return col
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
