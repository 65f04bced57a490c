package counter

import (
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/ajanata/oledcounter/internal/fonts"
)

// grid is a monochrome frame buffer that drops out-of-range writes, like the real panel drivers do.
type grid struct {
	w, h int16
	px   []bool
}

func newGrid(w, h int16) *grid { return &grid{w: w, h: h, px: make([]bool, int(w)*int(h))} }

func (g *grid) Size() (int16, int16) { return g.w, g.h }

func (g *grid) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.px[int(y)*int(g.w)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (g *grid) Display() error { return nil }

func (g *grid) at(x, y int16) bool { return g.px[int(y)*int(g.w)+int(x)] }

// bbox returns the bounding box of lit pixels, ignoring the top rows reserved for the dot.
func (g *grid) bbox(skipRows int16) (x0, y0, x1, y1 int16, n int) {
	x0, y0, x1, y1 = g.w, g.h, -1, -1
	for y := skipRows; y < g.h; y++ {
		for x := int16(0); x < g.w; x++ {
			if !g.at(x, y) {
				continue
			}
			n++
			x0, y0 = min(x0, x), min(y0, y)
			x1, y1 = max(x1, x), max(y1, y)
		}
	}
	return
}

// blockFont draws every glyph as a filled 5x7 box resting on the baseline, advancing 6 pixels.
type blockFont struct{}

type blockGlyph struct{}

func (blockGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	for xx := x; xx < x+5; xx++ {
		for yy := y - 7; yy < y; yy++ {
			d.SetPixel(xx, yy, c)
		}
	}
}

func (blockGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{Width: 5, Height: 7, XAdvance: 6, YOffset: -7}
}

func (blockFont) GetGlyph(rune) tinyfont.Glypher { return blockGlyph{} }
func (blockFont) GetYAdvance() uint8             { return 8 }

func newAnim(t *testing.T, cfg Config) *Anim {
	t.Helper()
	if cfg.Font == nil {
		cfg.Font = blockFont{}
	}
	if cfg.Max == 0 {
		cfg.Max = 10
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestCounterWraps(t *testing.T) {
	a := newAnim(t, Config{})
	g := newGrid(72, 40)
	a.Activate(g)
	for i := 1; i <= 10; i++ {
		if int(a.Value()) != i {
			t.Fatalf("frame %d shows %d", i, a.Value())
		}
		a.DrawFrame(g, uint32(i))
	}
	if a.Value() != 1 {
		t.Fatalf("after 10 frames value = %d, want 1", a.Value())
	}
}

func TestContrastRamp(t *testing.T) {
	tests := []struct {
		value uint8
		want  uint8
	}{
		{1, 20},
		{2, 46},
		{5, 124},
		{10, 255},
		{0, 20},   // clamped
		{11, 255}, // clamped
	}
	for _, tt := range tests {
		if got := Contrast(tt.value, 10, 20, 255); got != tt.want {
			t.Errorf("Contrast(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}

	a := newAnim(t, Config{Dim: true, ContrastMin: 20, ContrastMax: 255})
	if c, ok := a.Contrast(); !ok || c != 20 {
		t.Fatalf("initial contrast %d %v", c, ok)
	}
	if _, ok := newAnim(t, Config{}).Contrast(); ok {
		t.Fatal("contrast reported without Dim")
	}
}

func TestDotMovesAcrossTop(t *testing.T) {
	if x := DotX(1, 10, 72); x != 0 {
		t.Errorf("dot at value 1: %d", x)
	}
	if x := DotX(10, 10, 72); x != 71 {
		t.Errorf("dot at value 10: %d", x)
	}
	if x := DotX(4, 10, 72); x != 23 {
		t.Errorf("dot at value 4: %d", x)
	}

	a := newAnim(t, Config{Dot: true})
	g := newGrid(72, 40)
	a.Activate(g)
	a.DrawFrame(g, 0)
	if !g.at(0, 0) || !g.at(1, 1) || g.at(2, 0) {
		t.Fatal("dot not drawn at the top-left for value 1")
	}
}

func TestPlainIsCentred(t *testing.T) {
	a := newAnim(t, Config{})
	g := newGrid(72, 40)
	a.Activate(g)
	a.DrawFrame(g, 0)

	x0, y0, x1, y1, n := g.bbox(0)
	if n != 35 {
		t.Fatalf("lit %d pixels, want one 5x7 glyph", n)
	}
	left, right := x0, 71-x1
	if d := left - right; d < -2 || d > 2 {
		t.Errorf("horizontal margins %d/%d", left, right)
	}
	top, bottom := y0, 39-y1
	if d := top - bottom; d < -2 || d > 2 {
		t.Errorf("vertical margins %d/%d", top, bottom)
	}
}

func TestReplicatedOrigin(t *testing.T) {
	m := fonts.Metrics{Width: 12, Ascent: 7}
	x, y := ReplicatedOrigin(72, 40, m, 4)
	if x != 28 || y != 22 {
		t.Fatalf("origin %d,%d, want 28,22", x, y)
	}

	// wider than the panel: pinned to the left edge
	x, _ = ReplicatedOrigin(20, 40, fonts.Metrics{Width: 30, Ascent: 7}, 4)
	if x != 0 {
		t.Fatalf("x = %d, want 0", x)
	}

	// taller than the panel: baseline pushed down to keep the top on screen
	_, y = ReplicatedOrigin(72, 8, fonts.Metrics{Width: 6, Ascent: 20, Descent: 4}, 4)
	if y != 20 {
		t.Fatalf("y = %d, want 20", y)
	}
}

func TestReplicatedDrawing(t *testing.T) {
	a := newAnim(t, Config{Mode: ScaleReplicate, Scale: 4})
	g := newGrid(72, 40)
	a.Activate(g)
	a.DrawFrame(g, 0)

	_, y0, _, y1, n := g.bbox(0)
	if n == 0 {
		t.Fatal("nothing drawn")
	}
	// one 7 pixel glyph smeared over 4 rows
	if y1-y0+1 != 10 {
		t.Fatalf("height %d, want 10", y1-y0+1)
	}
	x0, _, x1, _, _ := g.bbox(0)
	// one 5 pixel glyph smeared over 4 columns
	if x1-x0+1 != 8 {
		t.Fatalf("width %d, want 8", x1-x0+1)
	}
}

func TestPixelScaledDrawing(t *testing.T) {
	a := newAnim(t, Config{Mode: ScalePixel, Scale: 2})
	g := newGrid(72, 40)
	a.Activate(g)
	a.DrawFrame(g, 0)

	x0, y0, x1, y1, n := g.bbox(0)
	if x1-x0+1 != 10 || y1-y0+1 != 14 || n != 140 {
		t.Fatalf("block %dx%d with %d pixels, want 10x14 solid", x1-x0+1, y1-y0+1, n)
	}
	if y0 != 13 {
		t.Fatalf("top %d, want 13", y0)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(Config{Max: 10}); err == nil {
		t.Error("expected error without a font")
	}
	if _, err := New(Config{Font: blockFont{}, Max: 1}); err == nil {
		t.Error("expected error for max 1")
	}
	if _, err := New(Config{Font: blockFont{}, Max: 10, Mode: ScalePixel}); err == nil {
		t.Error("expected error for scale 0")
	}
}
