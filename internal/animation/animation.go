package animation

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var (
	// On lights a pixel on a monochrome panel.
	On = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	// Off blanks a pixel.
	Off = color.RGBA{}
)

type Animation interface {
	// Activate is called when the animation is being started on the display.
	// An animation may be re-used so this should be able to be called more than once.
	Activate(drivers.Displayer)
	// DrawFrame draws the next frame of the animation.
	// The current frame number is provided to allow animations to be keyed off every-x-frames without having to keep
	// track of that themselves.
	// Returns whether the animation should continue.
	DrawFrame(disp drivers.Displayer, tick uint32) bool
}

// DrawImage draws the image on the display at the given coordinates, thresholding it for a monochrome panel:
// a pixel is lit when its luminance is at least half scale and it is not transparent.
// If wrap is true, off-screen coordinates will wrap around to the other side of the display.
// Otherwise, off-screen coordinates will be clipped.
//
// Wrapping negative offsets may not work correctly.
func DrawImage(disp drivers.Displayer, offX, offY int16, img image.Image, wrap bool) {
	w, h := disp.Size()
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		xx := int16(x-b.Min.X) + offX
		if xx < 0 || xx >= w {
			if wrap {
				xx = xx % w
			} else {
				continue
			}
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			yy := int16(y-b.Min.Y) + offY
			if yy < 0 || yy >= h {
				if wrap {
					yy = yy % h
				} else {
					continue
				}
			}
			if lit(img.At(x, y)) {
				disp.SetPixel(xx, yy, On)
			} else {
				disp.SetPixel(xx, yy, Off)
			}
		}
	}
}

func lit(c color.Color) bool {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y >= 0x80
}

// FillRect sets every pixel of the w x h box at x, y to c, clipped to the display.
func FillRect(disp drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	dw, dh := disp.Size()
	for xx := x; xx < x+w; xx++ {
		if xx < 0 || xx >= dw {
			continue
		}
		for yy := y; yy < y+h; yy++ {
			if yy < 0 || yy >= dh {
				continue
			}
			disp.SetPixel(xx, yy, c)
		}
	}
}

// Clear blanks the entire display buffer.
func Clear(disp drivers.Displayer) {
	w, h := disp.Size()
	FillRect(disp, 0, 0, w, h, Off)
}
