//go:build !tinygo

// Command oledcounter-sim runs the alarm-paced counter in a desktop window. The space bar is the rate button;
// escape quits.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/alarm"
	"github.com/ajanata/oledcounter/internal/animation/counter"
	"github.com/ajanata/oledcounter/internal/fonts"
	"github.com/ajanata/oledcounter/internal/panel"
)

// oledBlue is the colour of the common two-tone modules' lit pixels.
var oledBlue = color.RGBA{R: 0x60, G: 0xC8, B: 0xFF, A: 0xFF}

// keyPin reads as high while the key is held.
type keyPin struct {
	down atomic.Bool
}

func (p *keyPin) Get() bool { return p.down.Load() }

type game struct {
	fb    *panel.Framebuffer
	key   *keyPin
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.key.down.Store(ebiten.IsKeyPressed(ebiten.KeySpace))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.fb.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}
	g.fb.Snapshot(g.img, oledBlue)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	w, h := g.fb.Size()
	return int(w), int(h)
}

func main() {
	font := flag.String("font", fonts.Default, "counter font: "+strings.Join(fonts.Names(), ", "))
	zoom := flag.Int("zoom", 8, "window scale")
	pixel := flag.Int("scale", 1, "pixel-scale the counter text by this factor")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := oledcounter.DefaultConfig()
	cfg.FontName = *font
	cfg.Dim = true
	cfg.Dot = true
	cfg.Splash = "boot"
	cfg.SplashFrames = 2
	cfg.ButtonActiveLow = false
	cfg.Verbose = *verbose
	if *pixel > 1 {
		cfg.ScaleMode = counter.ScalePixel
		cfg.FontScale = int16(*pixel)
	}

	logger := oledcounter.PrintLogger{Tag: "sim", Verbose: cfg.Verbose}
	fb := panel.NewFramebuffer(72, 40, nil)
	key := &keyPin{}

	c, err := oledcounter.New(cfg, fb, nil, key, logger)
	if err != nil {
		log.Fatal(err)
	}
	timer, err := alarm.New(cfg.TicksPerSecond)
	if err != nil {
		log.Fatal(err)
	}
	defer timer.Stop()
	sched, err := oledcounter.NewFrameScheduler(timer, cfg.PollTimeout, logger)
	if err != nil {
		log.Fatal(err)
	}
	c.AttachScheduler(sched)
	if err := c.Init(); err != nil {
		log.Fatalf("init: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, sched) }()

	w, h := fb.Size()
	ebiten.SetWindowTitle("oledcounter")
	ebiten.SetWindowSize(int(w)**zoom, int(h)**zoom)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(&game{fb: fb, key: key})
	cancel()
	if runErr := <-done; runErr != nil {
		log.Fatal(runErr)
	}
	if err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
