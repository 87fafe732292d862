// Package canvas provides a scale-aware drawing surface over a 2D raster
// target.
//
// A Surface wraps a Target (a pixel buffer that can be exported as an
// encoded image) and its drawing Context (paths, fills, strokes, blits and
// an affine transform stack). The Surface itself contains no rasterization
// logic: it applies the configured scale factor and pixel-snapping rules to
// draw arguments and delegates to the context.
//
// The package ships a software target backed by *image.RGBA (see
// NewImageTarget) and a command-recording target for testing and replay
// (see backend/record). Custom targets can be injected via WithTarget.
//
// Basic usage:
//
//	s := canvas.New(800, 600)
//	s.SetScale(2)
//	s.DrawCircle(canvas.Pt(100, 100), 40, canvas.CircleStyle{
//	    Fill: color.RGBA{R: 255, A: 255},
//	})
//	url, err := s.DataURL()
//
// Surfaces are not safe for concurrent use. Each surface and its target are
// exclusively owned by the caller.
package canvas
