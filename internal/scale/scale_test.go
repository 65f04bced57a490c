package scale

import (
	"image/color"
	"testing"
)

type grid struct {
	w, h int16
	px   map[[2]int16]bool
}

func newGrid(w, h int16) *grid { return &grid{w: w, h: h, px: map[[2]int16]bool{}} }

func (g *grid) Size() (int16, int16) { return g.w, g.h }
func (g *grid) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		panic("pixel out of bounds")
	}
	g.px[[2]int16{x, y}] = c.R != 0
}
func (g *grid) Display() error { return nil }

func TestScalerBlock(t *testing.T) {
	g := newGrid(20, 10)
	s := New(g, 3)
	s.SetOrigin(2, 1)
	s.SetPixel(1, 1, color.RGBA{R: 255, A: 255})

	for x := int16(0); x < 20; x++ {
		for y := int16(0); y < 10; y++ {
			want := x >= 5 && x < 8 && y >= 4 && y < 7
			if g.px[[2]int16{x, y}] != want {
				t.Fatalf("pixel %d,%d = %v, want %v", x, y, !want, want)
			}
		}
	}
}

func TestScalerClips(t *testing.T) {
	g := newGrid(8, 8)
	s := New(g, 4)
	// the block straddles the right and bottom edges; SetPixel on grid panics if we write outside
	s.SetOrigin(2, 2)
	s.SetPixel(1, 1, color.RGBA{R: 255, A: 255})
	s.SetPixel(-1, -1, color.RGBA{R: 255, A: 255})
	if !g.px[[2]int16{7, 7}] {
		t.Fatal("expected the visible part of the block to be drawn")
	}
}

func TestScalerSize(t *testing.T) {
	s := New(newGrid(72, 40), 4)
	if w, h := s.Size(); w != 18 || h != 10 {
		t.Fatalf("size %dx%d, want 18x10", w, h)
	}
	s.SetOrigin(8, 0)
	if w, _ := s.Size(); w != 16 {
		t.Fatalf("width %d after origin shift, want 16", w)
	}
	if New(newGrid(4, 4), 0).Factor() != 1 {
		t.Fatal("factor below 1 not clamped")
	}
}
