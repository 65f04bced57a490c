// Package power wraps CPU clock control and low-power waits.
package power

import (
	"errors"
	"time"
)

// ErrNotSupported is returned when the platform offers no way to change the CPU clock.
var ErrNotSupported = errors.New("power: cpu frequency control not supported")

type Manager struct {
	// SetFrequency changes the CPU clock. Nil means the platform cannot do it.
	SetFrequency func(mhz uint32) error
	// SleepFunc performs the low-power wait. Nil uses time.Sleep, which parks the core on TinyGo targets.
	SleepFunc func(time.Duration)

	mhz   uint32
	slept time.Duration
}

// SetCPUFrequency asks for a fixed CPU clock. On failure the previous clock stays in effect.
func (m *Manager) SetCPUFrequency(mhz uint32) error {
	if mhz == 0 {
		return errors.New("power: cpu frequency must be non-zero")
	}
	if m.SetFrequency == nil {
		return ErrNotSupported
	}
	if err := m.SetFrequency(mhz); err != nil {
		return err
	}
	m.mhz = mhz
	return nil
}

// CPUFrequency returns the last frequency successfully set, or 0 if it was never changed.
func (m *Manager) CPUFrequency() uint32 { return m.mhz }

// Sleep waits for d in the lowest power state that still returns control to the caller. Zero returns at once.
func (m *Manager) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if m.SleepFunc != nil {
		m.SleepFunc(d)
	} else {
		time.Sleep(d)
	}
	m.slept += d
}

// Slept is the total time requested through Sleep.
func (m *Manager) Slept() time.Duration { return m.slept }
