//go:build !tinygo

// Command oledcounter-linux drives a 72x40 SSD1306 on a Linux I2C bus, pacing frames with a software alarm. An
// optional GPIO button cycles the frame rate.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/ajanata/oledcounter"
	"github.com/ajanata/oledcounter/internal/alarm"
	"github.com/ajanata/oledcounter/internal/fonts"
	"github.com/ajanata/oledcounter/internal/panel"
)

// gpioPin adapts a periph input to the Pin interface.
type gpioPin struct {
	gpio.PinIn
}

func (p gpioPin) Get() bool {
	return p.Read() == gpio.High
}

func main() {
	busName := flag.String("bus", "", "I2C bus name (empty for the first one)")
	buttonName := flag.String("button", "", "GPIO name of the rate button, pulled up and pressed low")
	width := flag.Int("width", 72, "panel width")
	height := flag.Int("height", 40, "panel height")
	font := flag.String("font", fonts.Default, "counter font: "+strings.Join(fonts.Names(), ", "))
	dim := flag.Bool("dim", true, "ramp the contrast with the count")
	dot := flag.Bool("dot", true, "draw the progress dot")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init: %v", err)
	}

	bus, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("open i2c bus: %v", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: *width, H: *height})
	if err != nil {
		log.Fatalf("init ssd1306: %v", err)
	}
	defer dev.Halt()

	var button oledcounter.Pin
	if *buttonName != "" {
		p := gpioreg.ByName(*buttonName)
		if p == nil {
			log.Fatalf("no gpio named %q", *buttonName)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			log.Fatalf("configure button: %v", err)
		}
		button = gpioPin{p}
	}

	cfg := oledcounter.DefaultConfig()
	cfg.FontName = *font
	cfg.Dim = *dim
	cfg.Dot = *dot
	cfg.Verbose = *verbose
	cfg.Splash = "boot"
	cfg.SplashFrames = 2

	logger := oledcounter.PrintLogger{Tag: "oledcounter", Verbose: cfg.Verbose}
	c, err := oledcounter.New(cfg, panel.NewPeriph(dev), nil, button, logger)
	if err != nil {
		log.Fatal(err)
	}

	timer, err := alarm.New(cfg.TicksPerSecond)
	if err != nil {
		log.Fatal(err)
	}
	defer timer.Stop()
	sched, err := oledcounter.NewFrameScheduler(timer, cfg.PollTimeout, logger)
	if err != nil {
		log.Fatal(err)
	}
	c.AttachScheduler(sched)

	if err := c.Init(); err != nil {
		log.Fatalf("init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := c.Run(ctx, sched); err != nil {
		log.Fatal(err)
	}
}
