// Package panel provides the Display implementations: the TinyGo SSD1306 driver on boards, and an in-memory
// 1 bit frame buffer that host builds flush to a periph.io panel or a simulator window.
package panel

import (
	"image"
	"image/color"
	"sync"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// FlushFunc pushes a finished frame out. It runs with the frame buffer locked.
type FlushFunc func(img *image1bit.VerticalLSB) error

type Framebuffer struct {
	mu  sync.Mutex
	img *image1bit.VerticalLSB
	w   int16
	h   int16

	flush       FlushFunc
	setContrast func(level uint8) error
	contrast    uint8
	frames      uint32
}

// NewFramebuffer returns a blank w x h buffer. flush may be nil, in which case Display only counts frames.
func NewFramebuffer(w, h int16, flush FlushFunc) *Framebuffer {
	return &Framebuffer{
		img:      image1bit.NewVerticalLSB(image.Rect(0, 0, int(w), int(h))),
		w:        w,
		h:        h,
		flush:    flush,
		contrast: 0xFF,
	}
}

// OnContrast installs the hook SetContrast forwards to.
func (f *Framebuffer) OnContrast(fn func(level uint8) error) {
	f.mu.Lock()
	f.setContrast = fn
	f.mu.Unlock()
}

func (f *Framebuffer) Size() (x, y int16) {
	return f.w, f.h
}

// SetPixel lights the pixel for any non-black colour. Out of range writes are dropped.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	on := c.R != 0 || c.G != 0 || c.B != 0
	f.mu.Lock()
	f.img.SetBit(int(x), int(y), image1bit.Bit(on))
	f.mu.Unlock()
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames++
	if f.flush == nil {
		return nil
	}
	return f.flush(f.img)
}

func (f *Framebuffer) ClearBuffer() {
	f.mu.Lock()
	for i := range f.img.Pix {
		f.img.Pix[i] = 0
	}
	f.mu.Unlock()
}

func (f *Framebuffer) SetContrast(level uint8) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setContrast == nil {
		f.contrast = level
		return nil
	}
	if err := f.setContrast(level); err != nil {
		return err
	}
	f.contrast = level
	return nil
}

// Contrast returns the last contrast level applied.
func (f *Framebuffer) Contrast() uint8 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contrast
}

// Frames returns how many times Display was called.
func (f *Framebuffer) Frames() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// Pixel reports whether the pixel at x, y is lit in the buffer.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return bool(f.img.BitAt(int(x), int(y)))
}

// Snapshot renders the buffer into dst as lit pixels of tint, scaled by the current contrast so dimming is
// visible in a simulator. dst must be at least as large as the buffer.
func (f *Framebuffer) Snapshot(dst *image.RGBA, tint color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// an OLED at contrast 0 is dim, not off
	k := 64 + uint32(f.contrast)*3/4
	lit := color.RGBA{
		R: uint8(uint32(tint.R) * k / 255),
		G: uint8(uint32(tint.G) * k / 255),
		B: uint8(uint32(tint.B) * k / 255),
		A: 0xFF,
	}
	dark := color.RGBA{A: 0xFF}
	for y := 0; y < int(f.h); y++ {
		for x := 0; x < int(f.w); x++ {
			if f.img.BitAt(x, y) {
				dst.SetRGBA(x, y, lit)
			} else {
				dst.SetRGBA(x, y, dark)
			}
		}
	}
}
