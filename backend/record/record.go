// Package record provides a target that records drawing operations.
//
// Instead of rasterizing pixels, the recording context captures every
// Context call as a typed Op. The op log can be inspected, diffed in tests,
// or replayed onto any other canvas.Context.
//
// Example:
//
//	rt := record.NewTarget()
//	s := canvas.New(0, 0, canvas.WithTarget(rt))
//	s.DrawLine(points, canvas.LineStyle{})
//	ops := rt.Recorder().Ops()
package record

import (
	"image"
	"image/color"

	"github.com/damajor/canvas"
)

// Kind identifies the type of a recorded operation.
// Each kind corresponds to one canvas.Context method.
type Kind uint8

const (
	OpSave Kind = iota
	OpRestore
	OpTranslate
	OpRotate
	OpScale
	OpClearRect
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpFill
	OpStroke
	OpSetFillColor
	OpSetStrokeColor
	OpSetLineWidth
	OpSetLineCap
	OpSetGlobalAlpha
	OpDrawImage
	OpDrawImageSized
)

var kindNames = [...]string{
	OpSave:           "Save",
	OpRestore:        "Restore",
	OpTranslate:      "Translate",
	OpRotate:         "Rotate",
	OpScale:          "Scale",
	OpClearRect:      "ClearRect",
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpArc:            "Arc",
	OpFill:           "Fill",
	OpStroke:         "Stroke",
	OpSetFillColor:   "SetFillColor",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetLineWidth:   "SetLineWidth",
	OpSetLineCap:     "SetLineCap",
	OpSetGlobalAlpha: "SetGlobalAlpha",
	OpDrawImage:      "DrawImage",
	OpDrawImageSized: "DrawImageSized",
}

// String returns the operation name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Op is one recorded drawing operation. Only the fields relevant to the
// Kind are set: Args holds numeric arguments in call order, Color the color
// argument, Cap the line-cap argument and Image the blitted image.
type Op struct {
	Kind  Kind
	Args  []float64
	Color color.Color
	Cap   canvas.LineCap
	Image image.Image
}

// Recorder implements canvas.Context by appending typed ops to a log.
// It tracks the save-stack depth and the current global alpha so tests can
// assert balance and restoration. The Recorder is not safe for concurrent
// use.
type Recorder struct {
	ops   []Op
	depth int
	alpha float64
}

var _ canvas.Context = (*Recorder)(nil)

// NewRecorder creates an empty recorder with global alpha 1.
func NewRecorder() *Recorder {
	return &Recorder{alpha: 1}
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Depth returns the current save-stack depth.
func (r *Recorder) Depth() int {
	return r.depth
}

// Reset discards all recorded operations and restores the initial state.
func (r *Recorder) Reset() {
	r.ops = nil
	r.depth = 0
	r.alpha = 1
}

func (r *Recorder) record(op Op) {
	r.ops = append(r.ops, op)
}

func (r *Recorder) Save() {
	r.record(Op{Kind: OpSave})
	r.depth++
}

func (r *Recorder) Restore() {
	r.record(Op{Kind: OpRestore})
	if r.depth > 0 {
		r.depth--
	}
}

func (r *Recorder) Translate(x, y float64) {
	r.record(Op{Kind: OpTranslate, Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.record(Op{Kind: OpRotate, Args: []float64{angle}})
}

func (r *Recorder) Scale(x, y float64) {
	r.record(Op{Kind: OpScale, Args: []float64{x, y}})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Kind: OpClearRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) BeginPath() {
	r.record(Op{Kind: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Op{Kind: OpMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Op{Kind: OpLineTo, Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(Op{Kind: OpArc, Args: []float64{x, y, radius, startAngle, endAngle}})
}

func (r *Recorder) Fill() {
	r.record(Op{Kind: OpFill})
}

func (r *Recorder) Stroke() {
	r.record(Op{Kind: OpStroke})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record(Op{Kind: OpSetFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record(Op{Kind: OpSetStrokeColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Op{Kind: OpSetLineWidth, Args: []float64{w}})
}

func (r *Recorder) SetLineCap(cap canvas.LineCap) {
	r.record(Op{Kind: OpSetLineCap, Cap: cap})
}

func (r *Recorder) GlobalAlpha() float64 {
	return r.alpha
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	r.record(Op{Kind: OpSetGlobalAlpha, Args: []float64{a}})
	r.alpha = a
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	r.record(Op{Kind: OpDrawImage, Args: []float64{x, y}, Image: img})
}

func (r *Recorder) DrawImageSized(img image.Image, x, y, w, h float64) {
	r.record(Op{Kind: OpDrawImageSized, Args: []float64{x, y, w, h}, Image: img})
}

// Replay plays the recorded operations back onto another context in order.
func (r *Recorder) Replay(dst canvas.Context) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpSave:
			dst.Save()
		case OpRestore:
			dst.Restore()
		case OpTranslate:
			dst.Translate(op.Args[0], op.Args[1])
		case OpRotate:
			dst.Rotate(op.Args[0])
		case OpScale:
			dst.Scale(op.Args[0], op.Args[1])
		case OpClearRect:
			dst.ClearRect(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case OpBeginPath:
			dst.BeginPath()
		case OpMoveTo:
			dst.MoveTo(op.Args[0], op.Args[1])
		case OpLineTo:
			dst.LineTo(op.Args[0], op.Args[1])
		case OpArc:
			dst.Arc(op.Args[0], op.Args[1], op.Args[2], op.Args[3], op.Args[4])
		case OpFill:
			dst.Fill()
		case OpStroke:
			dst.Stroke()
		case OpSetFillColor:
			dst.SetFillColor(op.Color)
		case OpSetStrokeColor:
			dst.SetStrokeColor(op.Color)
		case OpSetLineWidth:
			dst.SetLineWidth(op.Args[0])
		case OpSetLineCap:
			dst.SetLineCap(op.Cap)
		case OpSetGlobalAlpha:
			dst.SetGlobalAlpha(op.Args[0])
		case OpDrawImage:
			dst.DrawImage(op.Image, op.Args[0], op.Args[1])
		case OpDrawImageSized:
			dst.DrawImageSized(op.Image, op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		}
	}
}

// Target is a recording canvas.Target. It tracks dimensions and hands out a
// single Recorder as its context. Resizes are state changes only; there are
// no pixels to discard.
type Target struct {
	width, height int
	rec           *Recorder
}

var _ canvas.Target = (*Target)(nil)

// NewTarget creates a recording target at the canvas default dimensions.
func NewTarget() *Target {
	return &Target{
		width:  canvas.DefaultWidth,
		height: canvas.DefaultHeight,
		rec:    NewRecorder(),
	}
}

// Width returns the target width.
func (t *Target) Width() int {
	return t.width
}

// Height returns the target height.
func (t *Target) Height() int {
	return t.height
}

// SetWidth sets the target width.
func (t *Target) SetWidth(w int) {
	t.width = w
}

// SetHeight sets the target height.
func (t *Target) SetHeight(h int) {
	t.height = h
}

// Context returns the target's recorder.
func (t *Target) Context() canvas.Context {
	return t.rec
}

// Recorder returns the target's recorder with its concrete type, for
// inspection.
func (t *Target) Recorder() *Recorder {
	return t.rec
}

// DataURL returns the empty string: a recording target produces commands,
// not pixels. Replay the recorder onto a raster target to export an image.
func (t *Target) DataURL() (string, error) {
	return "", nil
}
