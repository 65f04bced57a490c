package fonts

import (
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// blockFont draws every glyph as a filled 5x7 box sitting on the baseline, with a 6 pixel advance. The 'g' glyph
// drops 2 pixels below the baseline.
type blockFont struct{}

type blockGlyph struct{ r rune }

func (g blockGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {}

func (g blockGlyph) Info() tinyfont.GlyphInfo {
	info := tinyfont.GlyphInfo{Rune: g.r, Width: 5, Height: 7, XAdvance: 6, YOffset: -7}
	if g.r == 'g' {
		info.YOffset = -5
	}
	return info
}

func (blockFont) GetGlyph(r rune) tinyfont.Glypher { return blockGlyph{r} }
func (blockFont) GetYAdvance() uint8               { return 8 }

func TestMeasure(t *testing.T) {
	m := Measure(blockFont{}, "10")
	if m.Ascent != 7 || m.Descent != 0 {
		t.Fatalf("metrics %+v", m)
	}
	if m.Width <= 0 || m.Width > 12 {
		t.Fatalf("width %d", m.Width)
	}
	m = Measure(blockFont{}, "1g")
	if m.Ascent != 7 || m.Descent != 2 {
		t.Fatalf("metrics with descender %+v", m)
	}
	if Advance(blockFont{}, 'x') != 6 {
		t.Fatal("advance")
	}
}

func TestByName(t *testing.T) {
	for _, n := range Names() {
		if _, err := ByName(n); err != nil {
			t.Errorf("ByName(%q): %v", n, err)
		}
	}
	def, err := ByName("")
	if err != nil || def == nil {
		t.Fatalf("default font: %v", err)
	}
	if _, err := ByName("comic-sans"); err == nil {
		t.Fatal("expected error for unknown font")
	}
}
