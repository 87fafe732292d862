// Package raster fills flattened polygons into an RGBA image.
//
// It is the CPU rasterization layer behind the package's software target.
// Paths arrive already flattened and transformed to device space; raster
// turns them into pixel coverage with golang.org/x/image/vector and
// composites the result source-over.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Point is a device-space coordinate pair.
type Point struct {
	X, Y float64
}

// Fill rasterizes the given polygons into dst with the given color,
// anti-aliased, composited source-over.
//
// Each polygon is implicitly closed. All polygons are normalized to the
// same orientation before rasterization so that overlapping shapes
// accumulate coverage instead of cancelling under the non-zero winding
// rule; stroke outlines rely on this.
func Fill(dst *image.RGBA, polys [][]Point, c color.Color) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over

	empty := true
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		poly = orient(poly)
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		empty = false
	}
	if empty {
		return
	}

	r.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

// orient returns the polygon wound counter-clockwise in image coordinates,
// reversing it if needed.
func orient(poly []Point) []Point {
	if signedArea(poly) >= 0 {
		return poly
	}
	rev := make([]Point, len(poly))
	for i, p := range poly {
		rev[len(poly)-1-i] = p
	}
	return rev
}

// signedArea computes twice the signed area of the polygon (shoelace).
func signedArea(poly []Point) float64 {
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}
