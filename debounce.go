package oledcounter

import (
	"time"
)

// Button reads a push button through a Pin. Buttons wired to ground with a pull-up read low when pressed, so
// they need ActiveLow.
type Button struct {
	Pin       Pin
	ActiveLow bool
}

func (b Button) Level() Level {
	if b.Pin.Get() != b.ActiveLow {
		return LevelPressed
	}
	return LevelReleased
}

// Debouncer turns level samples into a single event per press, fired on release.
//
// With StableFor at zero every sample is taken at face value, which is what the plain firmware does. A contact
// that bounces can then produce extra events; setting StableFor makes a level change count only once it has
// been sampled unchanged for that long.
type Debouncer struct {
	StableFor time.Duration
	// Now defaults to time.Now.
	Now func() time.Time

	last    Level
	handled bool

	candidate Level
	since     time.Time
}

// Poll feeds one sample and reports whether it completed a press (pressed, then released). Call it every loop
// iteration, whether or not a frame was rendered.
func (d *Debouncer) Poll(l Level) bool {
	l = d.filter(l)

	fire := false
	if d.last == LevelPressed && l == LevelReleased && !d.handled {
		fire = true
		d.handled = true
	}
	if l == LevelPressed && d.handled {
		d.handled = false
	}
	d.last = l
	return fire
}

// filter returns the accepted level for sample l.
func (d *Debouncer) filter(l Level) Level {
	if d.StableFor <= 0 {
		return l
	}
	now := d.now()
	if l == d.last {
		d.candidate = l
		d.since = time.Time{}
		return l
	}
	if d.since.IsZero() || l != d.candidate {
		d.candidate = l
		d.since = now
	}
	if now.Sub(d.since) >= d.StableFor {
		d.since = time.Time{}
		return l
	}
	return d.last
}

func (d *Debouncer) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
