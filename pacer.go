package oledcounter

import (
	"time"
)

// Pacer decides when the next frame is due. Next blocks for a bounded time and reports whether to render.
type Pacer interface {
	Next() FrameEvent
}

// DelayPacer renders immediately, then pauses Delay before every following frame.
type DelayPacer struct {
	Delay time.Duration
	// Sleep defaults to time.Sleep. Pass a power manager's Sleep to save power between frames.
	Sleep func(time.Duration)

	started bool
}

func (p *DelayPacer) Next() FrameEvent {
	if !p.started {
		p.started = true
		return FrameFired
	}
	if p.Sleep != nil {
		p.Sleep(p.Delay)
	} else {
		time.Sleep(p.Delay)
	}
	return FrameFired
}
