// Package oledcounter renders a counter on a small monochrome OLED, paced either by a fixed delay or by a
// periodic alarm whose rate a push button cycles through.
package oledcounter

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"

	"github.com/ajanata/oledcounter/internal/animation"
	"github.com/ajanata/oledcounter/internal/animation/counter"
	"github.com/ajanata/oledcounter/internal/animation/splash"
	"github.com/ajanata/oledcounter/internal/power"
)

type Counter struct {
	cfg     Config
	display Display
	status  Blinker
	button  *Button
	log     Logger

	sched    *FrameScheduler
	power    *power.Manager
	rates    *RateCycle
	debounce Debouncer

	bootText *textbuf.Buffer
	scene    *counter.Anim
	active   animation.Animation
	// dim is cleared once the panel has refused a contrast change as unsupported
	dim bool

	init  bool
	start time.Time
	ledOn bool

	tick      uint32
	lastSec   time.Time
	lastTicks uint32
	lastFPS   uint32
}

// New validates cfg and returns an uninitialized Counter. status and button may be nil.
func New(cfg Config, display Display, status Blinker, button Pin, log Logger) (*Counter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if display == nil {
		return nil, errors.New("must provide display")
	}
	if log == nil {
		log = nopLogger{}
	}

	c := &Counter{
		cfg:     cfg,
		display: display,
		status:  status,
		log:     log,
		debounce: Debouncer{
			StableFor: cfg.DebounceStable,
		},
		start: time.Now(),
	}
	if button != nil {
		c.button = &Button{Pin: button, ActiveLow: cfg.ButtonActiveLow}
	}
	return c, nil
}

// AttachScheduler makes button presses reprogram s. Init starts it at the first configured rate.
func (c *Counter) AttachScheduler(s *FrameScheduler) {
	c.sched = s
}

// AttachPower lets Init request the configured CPU frequency.
func (c *Counter) AttachPower(p *power.Manager) {
	c.power = p
}

func (c *Counter) Init() error {
	if c.init {
		return errors.New("already initialized")
	}
	c.log.Info("starting init")
	c.blink()

	var err error
	c.rates, err = NewRateCycle(c.cfg.Rates)
	if err != nil {
		return err
	}

	if c.cfg.BootLog {
		c.bootLog()
	}

	if c.cfg.CPUFrequencyMHz != 0 {
		c.setCPUFrequency()
	}

	c.scene, err = counter.New(counter.Config{
		Font:        c.cfg.font(),
		Max:         c.cfg.CounterMax,
		Dim:         c.cfg.Dim,
		ContrastMin: c.cfg.ContrastMin,
		ContrastMax: c.cfg.ContrastMax,
		Dot:         c.cfg.Dot,
		Mode:        c.cfg.ScaleMode,
		Scale:       c.cfg.FontScale,
	})
	if err != nil {
		return newError(PeripheralInit, "counter scene", "", err)
	}
	c.dim = c.cfg.Dim

	c.active = c.scene
	if c.cfg.Splash != "" {
		sp, err := splash.New(c.cfg.Splash, c.cfg.SplashFrames)
		if err != nil {
			c.log.Warnf("no splash: %v", err)
		} else {
			c.active = sp
		}
	}
	c.active.Activate(c.display)

	if c.sched != nil {
		if err := c.sched.Start(c.rates.Current()); err != nil {
			return err
		}
	}

	c.blink()
	c.lastSec = time.Now()
	c.init = true
	c.log.Info("init complete in " + time.Since(c.start).Round(100*time.Millisecond).String())
	return nil
}

func (c *Counter) bootLog() {
	var err error
	c.bootText, err = textbuf.New(c.display, textbuf.FontSize6x8)
	if err != nil {
		c.log.Warnf("no boot log: %v", err)
		return
	}
	w, h := c.bootText.Size()
	if w < 10 || h < 3 {
		c.log.Warn("display too small for boot log")
		return
	}

	if err := c.bootText.SetLineInverse(0, "OLED BOOT"); err != nil {
		c.log.Warnf("boot msg: %v", err)
		return
	}
	// we already know it was possible to print text so don't bother checking every time
	_ = c.bootText.SetY(1)
	dw, dh := c.display.Size()
	_ = c.bootText.Println(strconv.Itoa(int(dw)) + "x" + strconv.Itoa(int(dh)) + " " + strconv.Itoa(int(c.rates.Current())) + "fps")
	mem := runtime.MemStats{}
	runtime.ReadMemStats(&mem)
	_ = c.bootText.Println(strconv.Itoa(int(mem.HeapSys/1024)) + "k RAM")
	if c.cfg.BootMessage != "" {
		_ = c.bootText.Println(c.cfg.BootMessage)
	}
}

func (c *Counter) setCPUFrequency() {
	if c.power == nil {
		c.log.Warn("cpu frequency requested without a power manager")
		return
	}
	if err := c.power.SetCPUFrequency(c.cfg.CPUFrequencyMHz); err != nil {
		c.log.Warnf("failed to set cpu frequency: %v", err)
		return
	}
	c.log.Infof("cpu frequency set to %d MHz", c.cfg.CPUFrequencyMHz)
}

// Run renders a frame every time pacer fires and polls the button on every iteration, until ctx is done.
// A nil pacer uses the attached scheduler.
func (c *Counter) Run(ctx context.Context, pacer Pacer) error {
	if !c.init {
		return newError(NotInitialized, "run", "", nil)
	}
	if pacer == nil {
		if c.sched == nil {
			return errors.New("run: no pacer")
		}
		pacer = c.sched
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if pacer.Next() == FrameFired {
			if err := c.RunTick(); err != nil {
				return err
			}
		}
		c.PollInput()
	}
}

// RunTick renders a single frame. Driver errors are logged and the frame is dropped; they are never fatal.
func (c *Counter) RunTick() error {
	if !c.init {
		return newError(NotInitialized, "tick", "", nil)
	}

	c.tick++
	if time.Since(c.lastSec) >= time.Second {
		c.lastFPS = c.tick - c.lastTicks
		c.lastSec = time.Now()
		c.lastTicks = c.tick
		c.log.Debugf("%d fps", c.lastFPS)
	}

	if c.active != c.scene {
		if !c.active.DrawFrame(c.display, c.tick) {
			c.active = c.scene
			c.active.Activate(c.display)
		}
	}
	if c.active == c.scene {
		c.applyContrast()
		c.scene.DrawFrame(c.display, c.tick)
	}

	if err := c.display.Display(); err != nil {
		c.log.Errorf("display: %v", err)
	}

	if c.cfg.BlinkStatus {
		c.toggleStatus()
	}
	return nil
}

func (c *Counter) applyContrast() {
	if !c.dim {
		return
	}
	level, ok := c.scene.Contrast()
	if !ok {
		return
	}
	err := c.display.SetContrast(level)
	switch {
	case err == nil:
	case CodeOf(err) == NotSupported:
		c.log.Warn("display has no contrast control")
		c.dim = false
	default:
		c.log.Errorf("set contrast %d: %v", level, err)
	}
}

// PollInput samples the button. A completed press advances the frame rate.
func (c *Counter) PollInput() {
	if c.button == nil || !c.debounce.Poll(c.button.Level()) {
		return
	}
	if c.rates == nil {
		return
	}
	rate := c.rates.Advance()
	c.log.Infof("button: rate %d (%d/%d)", rate, c.rates.Index()+1, c.rates.Len())
	if c.sched == nil {
		return
	}
	if _, err := c.sched.ConfigureOrDefault(rate); err != nil {
		c.log.Errorf("reconfigure: %v", err)
	}
}

// Rate is the frame rate currently selected by the button.
func (c *Counter) Rate() uint32 {
	if c.rates == nil {
		return 0
	}
	return c.rates.Current()
}

// FPS is the number of frames rendered in the last full second.
func (c *Counter) FPS() uint32 { return c.lastFPS }

// Value is the number the next counter frame will show.
func (c *Counter) Value() uint8 {
	if c.scene == nil {
		return 0
	}
	return c.scene.Value()
}

// Panic does not return. It logs v and blinks the status LED forever; TinyGo cannot recover runtime panics, so
// this is used for fatal errors we detect ourselves.
func (c *Counter) Panic(v any) {
	c.log.Errorf("%v", v)
	for {
		c.log.Errorf("%v", v)
		c.blink()
	}
}

func (c *Counter) blink() {
	c.statusOn()
	time.Sleep(100 * time.Millisecond)
	c.statusOff()
	time.Sleep(100 * time.Millisecond)
}

func (c *Counter) toggleStatus() {
	if c.ledOn {
		c.statusOff()
	} else {
		c.statusOn()
	}
}

func (c *Counter) statusOn() {
	if c.status != nil {
		c.status.High()
	}
	c.ledOn = true
}

func (c *Counter) statusOff() {
	if c.status != nil {
		c.status.Low()
	}
	c.ledOn = false
}
