package oledcounter

import (
	"errors"
	"time"

	"tinygo.org/x/tinyfont"

	"github.com/ajanata/oledcounter/internal/animation/counter"
	"github.com/ajanata/oledcounter/internal/fonts"
)

// Config holds everything a program can tune. Start from DefaultConfig and override fields.
type Config struct {
	// Rates the button cycles through; the first one is used at start.
	Rates []uint32
	// TicksPerSecond is the alarm resolution.
	TicksPerSecond uint64
	// PollTimeout bounds each wait for a frame on the alarm-paced loop.
	PollTimeout time.Duration
	// FrameDelay is the pause after each frame on the delay-paced loops.
	FrameDelay time.Duration

	// FontName selects the counter font (see fonts.Names). Font overrides it when set.
	FontName string
	Font     tinyfont.Fonter
	// CounterMax is the value after which the counter wraps to 1.
	CounterMax  uint8
	Dim         bool
	ContrastMin uint8
	ContrastMax uint8
	Dot         bool
	ScaleMode   counter.ScaleMode
	FontScale   int16

	// BootMessage is printed on the boot screen under the banner.
	BootMessage string
	// BootLog shows the text boot log before rendering starts.
	BootLog bool
	// Splash is the name of a splash image to show for SplashFrames frames after boot. Empty skips it.
	Splash       string
	SplashFrames uint32

	// ButtonActiveLow is set for buttons wired to ground with a pull-up.
	ButtonActiveLow bool
	// BlinkStatus toggles the status LED every rendered frame.
	BlinkStatus bool
	// DebounceStable is the time a button level must hold before it counts. Zero takes raw samples.
	DebounceStable time.Duration
	// CPUFrequencyMHz is requested from the power manager at init. Zero leaves the clock alone.
	CPUFrequencyMHz uint32
	// Verbose enables debug logging, including the measured frame rate.
	Verbose bool
}

func DefaultConfig() Config {
	return Config{
		Rates:           append([]uint32(nil), DefaultRates...),
		TicksPerSecond:  1000000,
		PollTimeout:     DefaultPollTimeout,
		FrameDelay:      400 * time.Millisecond,
		FontName:        fonts.Default,
		CounterMax:      10,
		ContrastMin:     20,
		ContrastMax:     255,
		FontScale:       1,
		BootLog:         true,
		BootMessage:     "Hello World!",
		ButtonActiveLow: true,
	}
}

func (c *Config) Validate() error {
	if len(c.Rates) == 0 {
		return errors.New("config: no frame rates")
	}
	for _, r := range c.Rates {
		if r == 0 || r > MaxFrameRate {
			return errors.New("config: frame rate out of range")
		}
	}
	if c.TicksPerSecond == 0 {
		return errors.New("config: tick resolution must be non-zero")
	}
	if c.PollTimeout <= 0 {
		return errors.New("config: poll timeout must be positive")
	}
	if c.FrameDelay < 0 {
		return errors.New("config: frame delay must not be negative")
	}
	if c.CounterMax < 2 {
		return errors.New("config: counter max must be at least 2")
	}
	if c.ContrastMin > c.ContrastMax {
		return errors.New("config: contrast min above max")
	}
	if c.FontScale < 1 {
		return errors.New("config: font scale must be at least 1")
	}
	if c.Font == nil {
		if _, err := fonts.ByName(c.FontName); err != nil {
			return errors.New("config: " + err.Error())
		}
	}
	return nil
}

func (c *Config) font() tinyfont.Fonter {
	if c.Font != nil {
		return c.Font
	}
	f, _ := fonts.ByName(c.FontName)
	return f
}
