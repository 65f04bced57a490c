//go:build esp32c3

// Command scaling counts with every glyph stamped four times over, ramping the contrast with the count.
package main

import (
	"context"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/animation/counter"
	"github.com/ajanata/oledcounter/internal/board"
)

func main() {
	log := oledcounter.PrintLogger{Tag: "scaling"}

	disp, err := board.InitDisplay()
	if err != nil {
		board.Halt(err)
	}

	cfg := oledcounter.DefaultConfig()
	cfg.FontName = "proggy"
	cfg.ScaleMode = counter.ScaleReplicate
	cfg.FontScale = 4
	cfg.Dim = true
	cfg.BootLog = false

	c, err := oledcounter.New(cfg, disp, board.InitLED(), nil, log)
	if err != nil {
		board.Halt(err)
	}
	if err := c.Init(); err != nil {
		c.Panic(err)
	}
	if err := c.Run(context.Background(), &oledcounter.DelayPacer{Delay: cfg.FrameDelay}); err != nil {
		c.Panic(err)
	}
}
