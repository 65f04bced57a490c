// Package scale blows a drawing up by an integer factor, one source pixel becoming a factor x factor block.
package scale

import (
	"image/color"

	"tinygo.org/x/drivers"
)

type Scaler struct {
	d      drivers.Displayer
	factor int16
	x, y   int16
}

// New wraps d. Pixels drawn at (px, py) land on the block whose top-left corner is (x + px*factor, y + py*factor).
// A factor below 1 is treated as 1.
func New(d drivers.Displayer, factor int16) *Scaler {
	if factor < 1 {
		factor = 1
	}
	return &Scaler{d: d, factor: factor}
}

// SetOrigin moves the top-left corner of the scaled drawing, in display pixels.
func (s *Scaler) SetOrigin(x, y int16) {
	s.x, s.y = x, y
}

func (s *Scaler) Factor() int16 { return s.factor }

// Size returns the logical size: how many source pixels fit on the display from the origin.
func (s *Scaler) Size() (x, y int16) {
	w, h := s.d.Size()
	return (w - s.x) / s.factor, (h - s.y) / s.factor
}

func (s *Scaler) SetPixel(x, y int16, c color.RGBA) {
	w, h := s.d.Size()
	x0 := s.x + x*s.factor
	y0 := s.y + y*s.factor
	for xx := x0; xx < x0+s.factor; xx++ {
		if xx < 0 || xx >= w {
			continue
		}
		for yy := y0; yy < y0+s.factor; yy++ {
			if yy < 0 || yy >= h {
				continue
			}
			s.d.SetPixel(xx, yy, c)
		}
	}
}

func (s *Scaler) Display() error {
	return s.d.Display()
}
