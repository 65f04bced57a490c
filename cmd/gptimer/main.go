//go:build esp32c3

// Command gptimer renders on a periodic alarm. The boot button cycles the frame rate through 1, 2, 5, 10 and 30
// fps; a dot along the top edge tracks the count.
package main

import (
	"context"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/alarm"
	"github.com/ajanata/oledcounter/internal/board"
)

func main() {
	log := oledcounter.PrintLogger{Tag: "gptimer"}

	disp, err := board.InitDisplay()
	if err != nil {
		board.Halt(err)
	}

	cfg := oledcounter.DefaultConfig()
	cfg.Dim = true
	cfg.Dot = true
	cfg.Splash = "boot"
	cfg.SplashFrames = 2

	c, err := oledcounter.New(cfg, disp, board.InitLED(), board.InitButton(), log)
	if err != nil {
		board.Halt(err)
	}

	timer, err := alarm.New(cfg.TicksPerSecond)
	if err != nil {
		board.Halt(err)
	}
	sched, err := oledcounter.NewFrameScheduler(timer, cfg.PollTimeout, log)
	if err != nil {
		board.Halt(err)
	}
	c.AttachScheduler(sched)

	if err := c.Init(); err != nil {
		c.Panic(err)
	}
	if err := c.Run(context.Background(), sched); err != nil {
		c.Panic(err)
	}
}
