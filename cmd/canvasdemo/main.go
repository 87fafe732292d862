// Command canvasdemo demonstrates the canvas drawing surface.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/damajor/canvas"
)

func main() {
	var (
		width   = flag.Int("width", 800, "surface width")
		height  = flag.Int("height", 600, "surface height")
		scale   = flag.Float64("scale", 1, "logical-to-pixel scale factor")
		output  = flag.String("output", "demo.png", "output file")
		dataURL = flag.Bool("dataurl", false, "print the surface as a data URL")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	target := canvas.NewImageTarget(*width, *height)
	s := canvas.New(0, 0, canvas.WithTarget(target))
	s.SetScale(*scale)

	drawCircles(s)
	drawTrails(s)
	drawSprites(s)

	if *dataURL {
		url, err := s.DataURL()
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		os.Stdout.WriteString(url + "\n")
		return
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, target.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, s.Width(), s.Height())
}

func drawCircles(s *canvas.Surface) {
	colors := []color.RGBA{
		{R: 255, G: 80, B: 80, A: 255},
		{G: 200, B: 80, A: 255},
		{R: 80, G: 120, B: 255, A: 255},
	}
	for i, c := range colors {
		at := canvas.Pt(60+float64(i)*25, 60)
		s.DrawCircle(at, 30, canvas.CircleStyle{
			Fill:   c,
			Stroke: color.White,
			Alpha:  canvas.Alpha(0.8),
		})
	}
}

func drawTrails(s *canvas.Surface) {
	// A sine trail in logical coordinates, drawn through the scale factor.
	var points []canvas.Point
	for x := 0.0; x <= 320; x += 8 {
		points = append(points, canvas.Pt(20+x, 160+40*math.Sin(x/40)))
	}
	s.DrawLineScaled(points, canvas.LineStyle{
		Width: 6,
		Color: color.RGBA{R: 240, G: 200, B: 40, A: 255},
	})
}

func drawSprites(s *canvas.Surface) {
	sprite := makeSprite(32, color.RGBA{R: 200, G: 60, B: 200, A: 255})
	s.DrawImage(sprite, canvas.Pt(40.4, 260.6))
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 6
		s.DrawImageSized(sprite, canvas.Pt(120+float64(i)*70, 260), 48, 48, angle)
	}
}

// makeSprite builds a simple checkered square used as a blit source.
func makeSprite(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetRGBA(x, y, c)
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}
