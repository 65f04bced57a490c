package oledcounter

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/ajanata/oledcounter/internal/mathx"
)

const (
	// MaxFrameRate is the sanity ceiling for a requested frame rate.
	MaxFrameRate = 1000
	// DefaultFrameRate is what callers fall back to when a requested rate is rejected.
	DefaultFrameRate = 1
	// DefaultPollTimeout bounds each wait for a frame so the loop can poll input in between.
	DefaultPollTimeout = 10 * time.Millisecond
)

// Alarm is a periodic hardware-style timer counting in ticks of 1/Resolution() seconds.
type Alarm interface {
	// Resolution returns the number of ticks per second.
	Resolution() uint64
	// RegisterCallback installs the function run every time the alarm fires. It must be called before Enable.
	// The callback runs in interrupt context on hardware; its return value reports whether a higher-priority
	// task was woken.
	RegisterCallback(cb func() bool) error
	// SetPeriod programs the alarm interval. It may be called while the timer runs; the new period takes
	// effect from the next alarm.
	SetPeriod(ticks uint64, autoReload bool) error
	Enable() error
	Start() error
}

// FrameScheduler hands "a frame period elapsed" from the alarm callback over to the render loop.
//
// The signal is a single slot: alarms raised before the loop consumed the previous one are coalesced, so a
// slow loop drops frames instead of queueing them.
type FrameScheduler struct {
	alarm       Alarm
	log         Logger
	pollTimeout time.Duration

	// pending is the signal. It is written by OnAlarmFired and cleared by WaitForFrame; the atomic swap gives
	// the callback's write a happens-before edge to the consumer's read.
	pending atomic.Bool
	// wake is only a doorbell for a parked consumer. A stale token is harmless since the consumer re-checks
	// pending after every wakeup.
	wake    chan struct{}
	waiting atomic.Bool
	armed   atomic.Bool

	rate   atomic.Uint32
	period atomic.Uint64

	// owned by the consumer
	timer *time.Timer
}

// NewFrameScheduler registers the scheduler's callback with alarm. The alarm must not be enabled yet.
func NewFrameScheduler(alarm Alarm, pollTimeout time.Duration, log Logger) (*FrameScheduler, error) {
	if alarm == nil {
		return nil, newError(PeripheralInit, "new scheduler", "no alarm", nil)
	}
	if alarm.Resolution() == 0 {
		return nil, newError(PeripheralInit, "new scheduler", "alarm resolution is zero", nil)
	}
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	if log == nil {
		log = nopLogger{}
	}
	s := &FrameScheduler{
		alarm:       alarm,
		log:         log,
		pollTimeout: pollTimeout,
		wake:        make(chan struct{}, 1),
	}
	if err := alarm.RegisterCallback(s.OnAlarmFired); err != nil {
		return nil, newError(PeripheralInit, "register alarm callback", "", err)
	}
	return s, nil
}

// PeriodFor returns the alarm period for rate at the given tick resolution, or RateOutOfRange.
func PeriodFor(rate uint32, resolution uint64) (uint64, error) {
	if rate == 0 || rate > MaxFrameRate {
		return 0, newError(RateOutOfRange, "period", "rate "+strconv.FormatUint(uint64(rate), 10), nil)
	}
	p := mathx.RoundDiv(resolution, uint64(rate))
	if p == 0 {
		p = 1
	}
	return p, nil
}

// Configure programs the alarm to fire rate times per second, auto-reloading. It does not start or stop the
// timer and never clears a pending frame. On error the previously programmed period stays in effect.
func (s *FrameScheduler) Configure(rate uint32) (uint64, error) {
	p, err := PeriodFor(rate, s.alarm.Resolution())
	if err != nil {
		return 0, err
	}
	if err := s.alarm.SetPeriod(p, true); err != nil {
		s.log.Errorf("failed to update timer period: %v", err)
		return 0, newError(TransientDriver, "set alarm period", "", err)
	}
	s.rate.Store(rate)
	s.period.Store(p)
	s.armed.Store(true)
	s.log.Infof("fps changed to %d (period: %d ticks)", rate, p)
	return p, nil
}

// ConfigureOrDefault is Configure, falling back to DefaultFrameRate when rate is out of range.
func (s *FrameScheduler) ConfigureOrDefault(rate uint32) (uint64, error) {
	p, err := s.Configure(rate)
	if CodeOf(err) == RateOutOfRange {
		s.log.Warnf("invalid fps value %d, using %d", rate, DefaultFrameRate)
		return s.Configure(DefaultFrameRate)
	}
	return p, err
}

// Start programs the initial rate, then enables and starts the alarm.
func (s *FrameScheduler) Start(rate uint32) error {
	if _, err := s.ConfigureOrDefault(rate); err != nil {
		return newError(PeripheralInit, "configure alarm", "", err)
	}
	if err := s.alarm.Enable(); err != nil {
		return newError(PeripheralInit, "enable alarm", "", err)
	}
	if err := s.alarm.Start(); err != nil {
		return newError(PeripheralInit, "start alarm", "", err)
	}
	s.log.Infof("timer started: %d fps", s.rate.Load())
	return nil
}

// OnAlarmFired raises the frame signal. It is called from interrupt context and must not block, allocate or log.
// It returns true if the raise woke a consumer parked in WaitForFrame.
func (s *FrameScheduler) OnAlarmFired() bool {
	if s.pending.Swap(true) {
		// already pending; coalesce
		return false
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return s.waiting.Load()
}

// WaitForFrame blocks for at most timeout. It returns FrameFired, clearing the signal, if a frame was pending or
// became pending in that time, and FrameTimedOut otherwise. It must only be called from the render loop.
func (s *FrameScheduler) WaitForFrame(timeout time.Duration) FrameEvent {
	if s.take() {
		return FrameFired
	}
	if timeout <= 0 {
		return FrameTimedOut
	}

	if s.timer == nil {
		s.timer = time.NewTimer(timeout)
	} else {
		s.timer.Reset(timeout)
	}
	s.waiting.Store(true)
	defer s.waiting.Store(false)

	for {
		select {
		case <-s.wake:
			if s.take() {
				s.stopTimer()
				return FrameFired
			}
		case <-s.timer.C:
			// one last look, the alarm may have raced the timeout
			if s.take() {
				return FrameFired
			}
			return FrameTimedOut
		}
	}
}

// Next waits up to the poll timeout for a frame.
func (s *FrameScheduler) Next() FrameEvent {
	return s.WaitForFrame(s.pollTimeout)
}

func (s *FrameScheduler) take() bool {
	if s.pending.CompareAndSwap(true, false) {
		s.armed.Store(false)
		return true
	}
	return false
}

func (s *FrameScheduler) stopTimer() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
}

// State reports where the alarm/signal pair is.
func (s *FrameScheduler) State() SchedulerState {
	if s.pending.Load() {
		return SchedulerPending
	}
	if s.armed.Load() {
		return SchedulerArmed
	}
	return SchedulerIdle
}

// Rate returns the last successfully configured frame rate, or 0.
func (s *FrameScheduler) Rate() uint32 { return s.rate.Load() }

// Period returns the last successfully programmed alarm period in ticks, or 0.
func (s *FrameScheduler) Period() uint64 { return s.period.Load() }
