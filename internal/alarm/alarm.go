// Package alarm is a periodic timer with the life cycle of a general purpose hardware timer: create it with a
// resolution, register the alarm callback, program a period, enable, start.
//
// Alarms are scheduled against absolute deadlines, so the cadence does not drift with callback latency. A new
// period latches at the next alarm; the interval in flight is never cut short or doubled.
package alarm

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrEnabled     = errors.New("alarm: already enabled")
	ErrNotEnabled  = errors.New("alarm: not enabled")
	ErrRunning     = errors.New("alarm: already running")
	ErrNoCallback  = errors.New("alarm: no callback registered")
	ErrNoPeriod    = errors.New("alarm: no period set")
	ErrBadPeriod   = errors.New("alarm: period must be between one tick and 2^63-1 ticks")
	ErrResolution  = errors.New("alarm: resolution must be between 1 Hz and 1 GHz")
	ErrAfterEnable = errors.New("alarm: callbacks must be registered before Enable")
)

type Timer struct {
	resolution uint64
	tick       time.Duration

	mu      sync.Mutex
	cb      func() bool
	enabled bool
	running bool
	stop    chan struct{}
	done    chan struct{}

	// setting packs the period in ticks with the auto-reload flag in the top bit, so the two are always
	// observed together
	setting atomic.Uint64
	changed chan struct{}

	fired atomic.Uint32
	woken atomic.Uint32
}

// New returns a stopped timer counting resolutionHz ticks per second.
func New(resolutionHz uint64) (*Timer, error) {
	if resolutionHz == 0 || resolutionHz > uint64(time.Second) {
		return nil, ErrResolution
	}
	return &Timer{
		resolution: resolutionHz,
		tick:       time.Second / time.Duration(resolutionHz),
		changed:    make(chan struct{}, 1),
	}, nil
}

func (t *Timer) Resolution() uint64 { return t.resolution }

// RegisterCallback sets the function run on every alarm. It fails once the timer is enabled.
func (t *Timer) RegisterCallback(cb func() bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.enabled {
		return ErrAfterEnable
	}
	t.cb = cb
	return nil
}

// SetPeriod programs the alarm interval in ticks. It is safe to call while the timer runs.
func (t *Timer) SetPeriod(ticks uint64, autoReload bool) error {
	if ticks == 0 || ticks&reloadBit != 0 {
		return ErrBadPeriod
	}
	v := ticks
	if autoReload {
		v |= reloadBit
	}
	t.setting.Store(v)
	select {
	case t.changed <- struct{}{}:
	default:
	}
	return nil
}

// Period returns the programmed period in ticks.
func (t *Timer) Period() uint64 {
	p, _ := t.load()
	return p
}

const reloadBit = 1 << 63

func (t *Timer) load() (ticks uint64, autoReload bool) {
	v := t.setting.Load()
	return v &^ reloadBit, v&reloadBit != 0
}

func (t *Timer) Enable() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.enabled {
		return ErrEnabled
	}
	if t.cb == nil {
		return ErrNoCallback
	}
	t.enabled = true
	return nil
}

// Disable stops the timer if it runs and allows callbacks to be registered again.
func (t *Timer) Disable() error {
	if err := t.Stop(); err != nil && !errors.Is(err, ErrNotEnabled) {
		return err
	}
	t.mu.Lock()
	t.enabled = false
	t.mu.Unlock()
	return nil
}

// Start begins counting. The first alarm fires one period from now.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return ErrNotEnabled
	}
	if t.running {
		return ErrRunning
	}
	ticks, _ := t.load()
	if ticks == 0 {
		return ErrNoPeriod
	}

	// the first interval is fixed here; a SetPeriod from now on latches at the first alarm
	select {
	case <-t.changed:
	default:
	}
	first := time.Now().Add(time.Duration(ticks) * t.tick)

	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.cb, first, t.stop, t.done)
	return nil
}

// Stop halts counting and waits until no callback is in flight.
func (t *Timer) Stop() error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return ErrNotEnabled
	}
	t.running = false
	stop, done := t.stop, t.done
	t.mu.Unlock()

	close(stop)
	<-done
	return nil
}

// Fired returns how many alarms have fired, and how many of those reported a woken task.
func (t *Timer) Fired() (fired, woken uint32) {
	return t.fired.Load(), t.woken.Load()
}

func (t *Timer) run(cb func() bool, next time.Time, stop, done chan struct{}) {
	defer close(done)

	tm := time.NewTimer(time.Until(next))
	defer tm.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.changed:
			// latched at the next alarm
			continue
		case <-tm.C:
		}

		t.fired.Add(1)
		if cb() {
			t.woken.Add(1)
		}

		ticks, autoReload := t.load()
		if !autoReload {
			// one-shot: wait for a new period or a stop
			select {
			case <-stop:
				return
			case <-t.changed:
			}
			next = time.Now()
			ticks, _ = t.load()
		}

		next = next.Add(time.Duration(ticks) * t.tick)
		d := time.Until(next)
		if d < 0 {
			// fell behind by more than a period: fire once now and restart the cadence instead of bursting
			next = time.Now()
			d = 0
		}
		tm.Reset(d)
	}
}
