//go:build tinygo

package panel

import (
	"tinygo.org/x/drivers/ssd1306"
)

// SSD1306 adds contrast control to the TinyGo SSD1306 driver.
type SSD1306 struct {
	*ssd1306.Device
}

func NewSSD1306(dev *ssd1306.Device) *SSD1306 {
	return &SSD1306{Device: dev}
}

func (d *SSD1306) SetContrast(level uint8) error {
	d.Command(ssd1306.SETCONTRAST)
	d.Command(level)
	return nil
}
