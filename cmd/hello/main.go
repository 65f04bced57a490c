//go:build esp32c3

// Command hello prints a greeting on the boot screen, then counts in a large serif font while blinking the LED.
package main

import (
	"context"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/board"
)

func main() {
	log := oledcounter.PrintLogger{Tag: "hello"}

	disp, err := board.InitDisplay()
	if err != nil {
		board.Halt(err)
	}

	cfg := oledcounter.DefaultConfig()
	cfg.FontName = "serif-18"
	cfg.BootMessage = "Hello World!"
	cfg.BlinkStatus = true

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
