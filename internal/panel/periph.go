//go:build !tinygo

package panel

import (
	"image"

	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// NewPeriph returns a frame buffer the size of dev that flushes whole frames to it and forwards contrast changes.
func NewPeriph(dev *ssd1306.Dev) *Framebuffer {
	b := dev.Bounds()
	f := NewFramebuffer(int16(b.Dx()), int16(b.Dy()), func(img *image1bit.VerticalLSB) error {
		return dev.Draw(dev.Bounds(), img, image.Point{})
	})
	f.OnContrast(func(level uint8) error {
		return dev.SetContrast(level)
	})
	return f
}
