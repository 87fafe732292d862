package canvas

// Surface is a scale-aware wrapper over a raster Target and its drawing
// Context. It owns exactly one target and one context handle for its whole
// lifetime; only the dimensions and the scale factor are mutable.
//
// The scale factor multiplies position and size arguments in the *Scaled
// draw variants, letting callers work in a logical coordinate space while
// producing device-pixel output. It defaults to 1 and is stored without
// validation; scale > 0 is assumed.
type Surface struct {
	target Target
	ctx    Context
	scale  float64
}

// New creates a surface bound to a raster target. With no WithTarget option
// a fresh software ImageTarget is created at its default dimensions.
//
// A zero width or height leaves the corresponding target dimension at its
// default; only non-zero values are applied. SetDimension applies both
// dimensions unconditionally instead.
func New(width, height int, opts ...Option) *Surface {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	target := options.target
	if target == nil {
		target = NewImageTarget(DefaultWidth, DefaultHeight)
	}

	s := &Surface{
		target: target,
		ctx:    target.Context(),
		scale:  1,
	}
	if width != 0 {
		target.SetWidth(width)
	}
	if height != 0 {
		target.SetHeight(height)
	}
	return s
}

// Target returns the underlying raster target.
func (s *Surface) Target() Target {
	return s.target
}

// Context returns the drawing context bound to the target.
func (s *Surface) Context() Context {
	return s.ctx
}

// Width returns the target width in pixels.
func (s *Surface) Width() int {
	return s.target.Width()
}

// Height returns the target height in pixels.
func (s *Surface) Height() int {
	return s.target.Height()
}

// SetWidth resizes the target. Per raster-target semantics the resize
// discards all pixel content and resets the drawing state.
func (s *Surface) SetWidth(width int) {
	s.target.SetWidth(width)
}

// SetHeight resizes the target. Per raster-target semantics the resize
// discards all pixel content and resets the drawing state.
func (s *Surface) SetHeight(height int) {
	s.target.SetHeight(height)
}

// Scale returns the current scale factor.
func (s *Surface) Scale() float64 {
	return s.scale
}

// SetScale sets the multiplier used by the *Scaled draw variants.
// The value is stored as-is, without validation or clamping.
func (s *Surface) SetScale(scale float64) {
	s.scale = scale
}

// SetDimension sets both target dimensions unconditionally, zero included,
// then sets the scale factor only when one is provided. This deliberately
// differs from New, SetWidth and SetHeight, which skip zero values.
func (s *Surface) SetDimension(width, height int, scale ...float64) {
	s.target.SetWidth(width)
	s.target.SetHeight(height)
	if len(scale) > 0 {
		s.scale = scale[0]
	}
}

// Clear erases the full pixel region of the target to transparent.
func (s *Surface) Clear() {
	s.ctx.ClearRect(0, 0, float64(s.target.Width()), float64(s.target.Height()))
}

// Save pushes the context's drawing state. The caller is responsible for
// balancing Save and Restore calls; no depth is tracked.
func (s *Surface) Save() {
	s.ctx.Save()
}

// Restore pops the context's drawing state.
func (s *Surface) Restore() {
	s.ctx.Restore()
}

// Reverse pushes the drawing state and applies a horizontal mirror
// transform (translate by the full width, scale x by -1), so subsequent
// draws at x land at width-x.
//
// Reverse deliberately does not pop: it leaves the state stack one level
// deeper than before the call. The caller owns the unbalanced save and must
// call Restore later to drop the mirror transform.
func (s *Surface) Reverse() {
	s.ctx.Save()
	s.ctx.Translate(float64(s.target.Width()), 0)
	s.ctx.Scale(-1, 1)
}

// DataURL returns the target content as a data-URI encoded image string.
// Format and encoding are delegated to the target; the software target
// produces PNG.
func (s *Surface) DataURL() (string, error) {
	return s.target.DataURL()
}

// withAlpha runs fn with the context's global alpha overridden. The prior
// value is restored on every exit path, even when fn panics, and even when
// fn draws nothing. A nil alpha runs fn with no override.
func (s *Surface) withAlpha(alpha *float64, fn func()) {
	if alpha == nil {
		fn()
		return
	}
	prev := s.ctx.GlobalAlpha()
	s.ctx.SetGlobalAlpha(*alpha)
	defer s.ctx.SetGlobalAlpha(prev)
	fn()
}

// Alpha returns a pointer to a, for use as an optional style field.
func Alpha(a float64) *float64 {
	return &a
}
