package raster

import "math"

// Cap specifies the stroke endpoint style.
type Cap uint8

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt Cap = iota

	// CapRound ends the stroke with a semicircle.
	CapRound

	// CapSquare extends the stroke past the endpoint by half the width.
	CapSquare
)

// capSegments is the number of line segments used to flatten a cap or
// join disc.
const capSegments = 24

// Stroke expands an open polyline into filled outline polygons for the
// given stroke width: one quad per segment, a disc at every interior vertex
// (round joins), and end treatment per cap style. The result is meant for
// Fill, which merges the overlapping pieces.
//
// Polylines with fewer than 2 points or a non-positive width produce nil.
func Stroke(line []Point, width float64, cap Cap) [][]Point {
	if len(line) < 2 || width <= 0 {
		return nil
	}
	hw := width / 2

	// Square caps extend the first and last non-degenerate segment, so a
	// zero-length lead-in or tail does not swallow the cap.
	first, last := -1, -1
	for i := 0; i < len(line)-1; i++ {
		if line[i] != line[i+1] {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	polys := make([][]Point, 0, 2*len(line))
	for i := 0; i < len(line)-1; i++ {
		p, q := line[i], line[i+1]
		dx, dy := q.X-p.X, q.Y-p.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		ux, uy := dx/length, dy/length

		if cap == CapSquare {
			if i == first {
				p = Point{X: p.X - ux*hw, Y: p.Y - uy*hw}
			}
			if i == last {
				q = Point{X: q.X + ux*hw, Y: q.Y + uy*hw}
			}
		}

		nx, ny := -uy*hw, ux*hw
		polys = append(polys, []Point{
			{X: p.X + nx, Y: p.Y + ny},
			{X: q.X + nx, Y: q.Y + ny},
			{X: q.X - nx, Y: q.Y - ny},
			{X: p.X - nx, Y: p.Y - ny},
		})
	}
	if len(polys) == 0 {
		// All segments degenerate. A round cap still marks the point.
		if cap == CapRound {
			return [][]Point{disc(line[0], hw)}
		}
		return nil
	}

	// Round joins at interior vertices, regardless of cap style.
	for _, p := range line[1 : len(line)-1] {
		polys = append(polys, disc(p, hw))
	}
	if cap == CapRound {
		polys = append(polys, disc(line[0], hw), disc(line[len(line)-1], hw))
	}
	return polys
}

// disc returns a circle polygon centered at c with radius r.
func disc(c Point, r float64) []Point {
	poly := make([]Point, capSegments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / capSegments
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return poly
}
