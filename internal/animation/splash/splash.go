// Package splash shows a still image for a number of frames.
package splash

import (
	"image"

	"tinygo.org/x/drivers"

	"github.com/ajanata/oledcounter/internal/animation"
	"github.com/ajanata/oledcounter/internal/media"
)

type Anim struct {
	img    image.Image
	frames uint32
	shown  uint32
}

// New loads the named splash image. The animation ends after frames frames; zero keeps it up forever.
func New(file string, frames uint32) (*Anim, error) {
	img, err := media.LoadImage(media.TypeSplash, file)
	if err != nil {
		return nil, err
	}

	return &Anim{
		img:    img,
		frames: frames,
	}, nil
}

// Activate blanks the display and draws the image centred on it.
func (a *Anim) Activate(disp drivers.Displayer) {
	a.shown = 0
	animation.Clear(disp)
	w, h := disp.Size()
	b := a.img.Bounds()
	x := (w - int16(b.Dx())) / 2
	y := (h - int16(b.Dy())) / 2
	animation.DrawImage(disp, x, y, a.img, false)
}

func (a *Anim) DrawFrame(_ drivers.Displayer, _ uint32) bool {
	if a.frames == 0 {
		return true
	}
	a.shown++
	return a.shown < a.frames
}
