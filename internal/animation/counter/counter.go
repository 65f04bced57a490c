// Package counter renders a number that counts up every frame, centred on the display, with an optional
// progress dot along the top edge and optional text scaling.
package counter

import (
	"errors"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/ajanata/oledcounter/internal/animation"
	"github.com/ajanata/oledcounter/internal/fonts"
	"github.com/ajanata/oledcounter/internal/mathx"
	"github.com/ajanata/oledcounter/internal/scale"
)

type ScaleMode uint8

const (
	ScaleNone ScaleMode = iota
	// ScaleReplicate draws every glyph Scale x Scale times at one pixel offsets. Cheap, and the result looks
	// bold rather than big.
	ScaleReplicate
	// ScalePixel turns every font pixel into a Scale x Scale block.
	ScalePixel
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleNone:
		return "none"
	case ScaleReplicate:
		return "replicate"
	case ScalePixel:
		return "pixel"
	default:
		return "INVALID"
	}
}

// DotSize is the edge length of the progress dot.
const DotSize = 2

type Config struct {
	Font tinyfont.Fonter
	// Max is the last value before the counter wraps back to 1.
	Max uint8

	// Dim ramps the contrast from ContrastMin at 1 to ContrastMax at Max.
	Dim         bool
	ContrastMin uint8
	ContrastMax uint8

	Dot   bool
	Mode  ScaleMode
	Scale int16
}

type Anim struct {
	cfg   Config
	value uint8
}

func New(cfg Config) (*Anim, error) {
	if cfg.Font == nil {
		return nil, errors.New("counter: no font")
	}
	if cfg.Max < 2 {
		return nil, errors.New("counter: max must be at least 2")
	}
	if cfg.Mode != ScaleNone && cfg.Scale < 1 {
		return nil, errors.New("counter: scale must be at least 1")
	}
	return &Anim{cfg: cfg, value: 1}, nil
}

// Value is the number the next frame will show.
func (a *Anim) Value() uint8 { return a.value }

// Contrast returns the panel contrast for the next frame, and whether contrast ramping is enabled at all.
func (a *Anim) Contrast() (uint8, bool) {
	if !a.cfg.Dim {
		return 0, false
	}
	return Contrast(a.value, a.cfg.Max, a.cfg.ContrastMin, a.cfg.ContrastMax), true
}

func (a *Anim) Activate(disp drivers.Displayer) {
	a.value = 1
	animation.Clear(disp)
}

// DrawFrame clears the display buffer, draws the current value and advances it. It never ends.
func (a *Anim) DrawFrame(disp drivers.Displayer, _ uint32) bool {
	animation.Clear(disp)

	s := strconv.Itoa(int(a.value))
	switch {
	case a.cfg.Mode == ScaleReplicate && a.cfg.Scale > 1:
		a.drawReplicated(disp, s)
	case a.cfg.Mode == ScalePixel && a.cfg.Scale > 1:
		a.drawPixelScaled(disp, s)
	default:
		a.drawPlain(disp, s)
	}

	if a.cfg.Dot {
		w, _ := disp.Size()
		animation.FillRect(disp, DotX(a.value, a.cfg.Max, w), 0, DotSize, DotSize, animation.On)
	}

	a.value++
	if a.value > a.cfg.Max {
		a.value = 1
	}
	return true
}

func (a *Anim) drawPlain(disp drivers.Displayer, s string) {
	w, h := disp.Size()
	m := fonts.Measure(a.cfg.Font, s)
	x, y := Centre(w, h, m)
	tinyfont.WriteLine(disp, a.cfg.Font, x, y, s, animation.On)
}

func (a *Anim) drawReplicated(disp drivers.Displayer, s string) {
	w, h := disp.Size()
	n := a.cfg.Scale
	x, y := ReplicatedOrigin(w, h, fonts.Measure(a.cfg.Font, s), n)

	for _, r := range s {
		for sy := int16(0); sy < n; sy++ {
			for sx := int16(0); sx < n; sx++ {
				ox := x + sx
				if ox < 0 || ox >= w {
					continue
				}
				tinyfont.DrawChar(disp, a.cfg.Font, ox, y+sy, r, animation.On)
			}
		}
		x += fonts.Advance(a.cfg.Font, r) + n - 1
		if x >= w {
			break
		}
	}
}

func (a *Anim) drawPixelScaled(disp drivers.Displayer, s string) {
	w, h := disp.Size()
	n := a.cfg.Scale
	m := fonts.Measure(a.cfg.Font, s)
	ox := mathx.Clamp((w-m.Width*n)/2, 0, w)
	oy := mathx.Clamp((h-(m.Ascent+m.Descent)*n)/2, 0, h)

	sc := scale.New(disp, n)
	sc.SetOrigin(ox, oy)
	tinyfont.WriteLine(sc, a.cfg.Font, 0, m.Ascent, s, animation.On)
}

// Contrast maps value in [1, top] linearly onto [lo, hi].
func Contrast(value, top, lo, hi uint8) uint8 {
	v := mathx.Clamp(int(value), 1, int(top))
	return uint8(mathx.Lerp(int(lo), int(hi), v-1, int(top)-1))
}

// DotX is the left edge of the progress dot: 0 at value 1, the last column at value top.
func DotX(value, top uint8, width int16) int16 {
	v := mathx.Clamp(int(value), 1, int(top))
	return int16(mathx.Lerp(0, int(width)-1, v-1, int(top)-1))
}

// Centre returns the left edge and baseline that centre text with metrics m.
func Centre(w, h int16, m fonts.Metrics) (x, y int16) {
	return (w - m.Width) / 2, (h + m.Ascent) / 2
}

// ReplicatedOrigin returns the left edge and baseline for text drawn n times over at one pixel offsets. The
// block grows by n-1 pixels in each direction; it is centred and then pushed back on screen if it overhangs.
func ReplicatedOrigin(w, h int16, m fonts.Metrics, n int16) (x, y int16) {
	width := m.Width + n - 1
	height := m.Ascent + m.Descent + n - 1

	x = (w - width) / 2
	if x < 0 {
		x = 0
	}

	y = (h-height)/2 + m.Ascent
	if y < m.Ascent {
		y = m.Ascent
	} else if y-m.Ascent+height > h {
		y = h - height + m.Ascent
	}
	return x, y
}
