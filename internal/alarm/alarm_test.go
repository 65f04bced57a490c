package alarm

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestLifecycleOrder(t *testing.T) {
	tm, err := New(1000000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tm.Enable(); !errors.Is(err, ErrNoCallback) {
		t.Fatalf("Enable without callback: %v", err)
	}
	if err := tm.RegisterCallback(func() bool { return false }); err != nil {
		t.Fatalf("RegisterCallback: %v", err)
	}
	if err := tm.Start(); !errors.Is(err, ErrNotEnabled) {
		t.Fatalf("Start before Enable: %v", err)
	}
	if err := tm.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if err := tm.RegisterCallback(func() bool { return false }); !errors.Is(err, ErrAfterEnable) {
		t.Fatalf("RegisterCallback after Enable: %v", err)
	}
	if err := tm.Start(); !errors.Is(err, ErrNoPeriod) {
		t.Fatalf("Start without period: %v", err)
	}
	if err := tm.SetPeriod(0, true); !errors.Is(err, ErrBadPeriod) {
		t.Fatalf("SetPeriod(0): %v", err)
	}
	if err := tm.SetPeriod(1000, true); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := tm.Start(); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start: %v", err)
	}
	if err := tm.Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
}

func TestResolution(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrResolution) {
		t.Fatalf("New(0): %v", err)
	}
	tm, err := New(1000)
	if err != nil {
		t.Fatal(err)
	}
	if tm.Resolution() != 1000 {
		t.Fatalf("resolution %d", tm.Resolution())
	}
}

func TestFiresPeriodically(t *testing.T) {
	tm, err := New(1000) // 1 tick = 1ms
	if err != nil {
		t.Fatal(err)
	}
	var n atomic.Int32
	_ = tm.RegisterCallback(func() bool { n.Add(1); return true })
	_ = tm.SetPeriod(5, true)
	_ = tm.Enable()
	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(60 * time.Millisecond)
	if err := tm.Stop(); err != nil {
		t.Fatal(err)
	}
	got := n.Load()
	if got < 3 {
		t.Fatalf("fired %d times in 60ms at a 5ms period", got)
	}
	fired, woken := tm.Fired()
	if int32(fired) != got || fired != woken {
		t.Fatalf("counters fired=%d woken=%d callback=%d", fired, woken, got)
	}

	// stopped means stopped
	time.Sleep(20 * time.Millisecond)
	if n.Load() != got {
		t.Fatal("callback ran after Stop returned")
	}
}

func TestOneShot(t *testing.T) {
	tm, err := New(1000)
	if err != nil {
		t.Fatal(err)
	}
	fired := make(chan struct{}, 10)
	_ = tm.RegisterCallback(func() bool { fired <- struct{}{}; return false })
	_ = tm.SetPeriod(2, false)
	_ = tm.Enable()
	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	defer tm.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("one-shot never fired")
	}
	select {
	case <-fired:
		t.Fatal("one-shot fired twice")
	case <-time.After(30 * time.Millisecond):
	}

	// re-arming with a new period fires again
	_ = tm.SetPeriod(2, false)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("re-armed one-shot never fired")
	}
}

func TestPeriodChangeWhileRunning(t *testing.T) {
	tm, err := New(1000)
	if err != nil {
		t.Fatal(err)
	}
	var n atomic.Int32
	_ = tm.RegisterCallback(func() bool { n.Add(1); return false })
	_ = tm.SetPeriod(1000, true) // 1s: nothing should fire during the test on this period
	_ = tm.Enable()
	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	defer tm.Stop()

	_ = tm.SetPeriod(2, true)
	if tm.Period() != 2 {
		t.Fatalf("period %d", tm.Period())
	}
	// the 1s interval in flight is honoured; the new period applies after it
	time.Sleep(100 * time.Millisecond)
	if n.Load() != 0 {
		t.Fatalf("fired %d times before the in-flight period elapsed", n.Load())
	}

	deadline := time.After(3 * time.Second)
	for n.Load() < 5 {
		select {
		case <-deadline:
			t.Fatalf("new period never latched: %d alarms", n.Load())
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func TestPeriodAndReloadStoredTogether(t *testing.T) {
	tm, err := New(1000)
	if err != nil {
		t.Fatal(err)
	}
	if err := tm.SetPeriod(1<<63, true); !errors.Is(err, ErrBadPeriod) {
		t.Fatalf("SetPeriod(2^63) = %v", err)
	}

	tests := []struct {
		ticks      uint64
		autoReload bool
	}{
		{1, true},
		{1, false},
		{1<<63 - 1, true},
		{500, false},
	}
	for _, tt := range tests {
		if err := tm.SetPeriod(tt.ticks, tt.autoReload); err != nil {
			t.Fatalf("SetPeriod(%d, %v): %v", tt.ticks, tt.autoReload, err)
		}
		ticks, reload := tm.load()
		if ticks != tt.ticks || reload != tt.autoReload || tm.Period() != tt.ticks {
			t.Fatalf("stored %d/%v, want %d/%v", ticks, reload, tt.ticks, tt.autoReload)
		}
	}
}
