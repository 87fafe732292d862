package canvas

import "image"

// DrawImage blits an image at its natural size with its top-left corner at
// the pixel-rounded position. Rounding follows Round's half-up rule.
func (s *Surface) DrawImage(img image.Image, at Point) {
	s.ctx.DrawImage(img, float64(Round(at.X)), float64(Round(at.Y)))
}

// DrawImageScaled multiplies the position and size by the current scale
// factor and delegates to DrawImageSized. Use it when working in a logical
// coordinate space; DrawImageScaled(img, p, w, h, a) at scale k is
// equivalent to DrawImageSized(img, p.Mul(k), w*k, h*k, a).
func (s *Surface) DrawImageScaled(img image.Image, at Point, width, height, angle float64) {
	s.DrawImageSized(img, at.Mul(s.scale), width*s.scale, height*s.scale, angle)
}

// DrawImageSized blits an image stretched to width x height pixels.
//
// With angle zero the image's top-left corner lands at the pixel-rounded
// position with no transform bracketing. With a non-zero angle the blit is
// rotated by angle radians around the center of the destination rectangle:
// the state is saved, the origin translated to that center, rotated, the
// image drawn centered on the rotated origin, and the state restored, so
// the rotation never leaks into subsequent draws.
func (s *Surface) DrawImageSized(img image.Image, at Point, width, height, angle float64) {
	if angle != 0 {
		s.ctx.Save()
		s.ctx.Translate(at.X+width/2, at.Y+height/2)
		s.ctx.Rotate(angle)
		s.ctx.DrawImageSized(img, -width/2, -height/2, width, height)
		s.ctx.Restore()
		return
	}
	s.ctx.DrawImageSized(img, float64(Round(at.X)), float64(Round(at.Y)), width, height)
}
