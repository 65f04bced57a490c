//go:build esp32c3

// Package board wires the ESP32-C3 module with the 0.42" 72x40 OLED: I2C on GPIO 5/6, a boot button on GPIO 9
// and the status LED on GPIO 8.
package board

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/oledcounter/internal/panel"
)

const (
	SDA    = machine.GPIO5
	SCL    = machine.GPIO6
	Button = machine.GPIO9
	LED    = machine.GPIO8

	Address = 0x3C
	Width   = 72
	Height  = 40
)

// InitDisplay configures the I2C bus and the panel, and blanks it.
func InitDisplay() (*panel.SSD1306, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL:       SCL,
		SDA:       SDA,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	// the 72x40 glass sits in the middle of the controller's 128x64 RAM
	dev.Configure(ssd1306.Config{
		Width:     Width,
		Height:    Height,
		Address:   Address,
		VccState:  ssd1306.SWITCHCAPVCC,
		ResetCol:  ssd1306.ResetValue{28, 99},
		ResetPage: ssd1306.ResetValue{0, 5},
	})
	dev.ClearBuffer()
	dev.ClearDisplay()
	return panel.NewSSD1306(dev), nil
}

// InitButton configures the boot button with its pull-up. It reads low when pressed.
func InitButton() machine.Pin {
	Button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return Button
}

func InitLED() machine.Pin {
	LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return LED
}

// Halt does not return. It prints v and blinks the LED forever.
func Halt(v any) {
	led := InitLED()
	for {
		println(v)
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
