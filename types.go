package oledcounter

import (
	"tinygo.org/x/drivers"
)

// Display is the panel the counter is rendered on.
type Display interface {
	drivers.Displayer

	// ClearBuffer blanks the local frame buffer without touching the panel. The next Display call pushes the
	// blank frame out.
	ClearBuffer()

	// SetContrast sets the panel brightness, 0 being dimmest. Panels without a contrast control should return
	// NotSupported.
	SetContrast(level uint8) error
}

// Pin is a digital input. machine.Pin satisfies it.
type Pin interface {
	Get() bool
}

type Blinker interface {
	Low()
	High()
}

// Level is a logical button observation, after any active-low inversion.
type Level uint8

const (
	LevelReleased Level = iota
	LevelPressed
)

func (l Level) String() string {
	switch l {
	case LevelReleased:
		return "released"
	case LevelPressed:
		return "pressed"
	default:
		return "INVALID"
	}
}

// FrameEvent is the outcome of waiting for the next frame.
type FrameEvent uint8

const (
	FrameTimedOut FrameEvent = iota
	FrameFired
)

func (e FrameEvent) String() string {
	switch e {
	case FrameTimedOut:
		return "timed out"
	case FrameFired:
		return "fired"
	default:
		return "INVALID"
	}
}

// SchedulerState tracks one alarm/signal pair.
type SchedulerState uint8

const (
	// SchedulerIdle means no frame is pending and the alarm has not been (re)configured since the last frame
	// was consumed.
	SchedulerIdle SchedulerState = iota
	SchedulerArmed
	// SchedulerPending means an alarm fired and the frame has not been consumed yet.
	SchedulerPending
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerIdle:
		return "idle"
	case SchedulerArmed:
		return "armed"
	case SchedulerPending:
		return "pending"
	default:
		return "INVALID"
	}
}
