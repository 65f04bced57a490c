//go:build esp32c3

// Command sleepdelay renders at 5 fps and sleeps between frames instead of busy waiting.
package main

import (
	"context"
	"time"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/board"
	"github.com/ajanata/oledcounter/internal/power"
)

const fps = 5

func main() {
	log := oledcounter.PrintLogger{Tag: "sleepdelay"}

	disp, err := board.InitDisplay()
	if err != nil {
		board.Halt(err)
	}

	cfg := oledcounter.DefaultConfig()
	cfg.FrameDelay = time.Second / fps
	cfg.CPUFrequencyMHz = 80
	cfg.Dim = true

	// TinyGo has no clock control for this chip, so the frequency request is logged and ignored
	pm := &power.Manager{}

	c, err := oledcounter.New(cfg, disp, board.InitLED(), nil, log)
	if err != nil {
		board.Halt(err)
	}
	c.AttachPower(pm)
	if err := c.Init(); err != nil {
		c.Panic(err)
	}
	if err := c.Run(context.Background(), &oledcounter.DelayPacer{Delay: cfg.FrameDelay, Sleep: pm.Sleep}); err != nil {
		c.Panic(err)
	}
}
