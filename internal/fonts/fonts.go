// Package fonts names the tinyfont faces the programs can be configured with.
package fonts

import (
	"errors"
	"sort"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/freeserif"
	"tinygo.org/x/tinyfont/proggy"
)

// Default is used when no font is configured. Bold sans at 12pt keeps "10" inside a 72x40 panel.
const Default = "sans-bold-12"

var byName = map[string]tinyfont.Fonter{
	"proggy":       &proggy.TinySZ8pt7b,
	"sans-9":       &freesans.Regular9pt7b,
	"sans-bold-9":  &freesans.Bold9pt7b,
	"sans-12":      &freesans.Regular12pt7b,
	"sans-bold-12": &freesans.Bold12pt7b,
	"serif-9":      &freeserif.Regular9pt7b,
	"serif-12":     &freeserif.Regular12pt7b,
	"serif-18":     &freeserif.Regular18pt7b,
	"mono-9":       &freemono.Regular9pt7b,
	"mono-bold-9":  &freemono.Bold9pt7b,
	"mono-bold-12": &freemono.Bold12pt7b,
}

// ByName returns the named font. An empty name selects Default.
func ByName(name string) (tinyfont.Fonter, error) {
	if name == "" {
		name = Default
	}
	f, ok := byName[name]
	if !ok {
		return nil, errors.New("unknown font " + name)
	}
	return f, nil
}

// Names lists the available fonts in order.
func Names() []string {
	n := make([]string, 0, len(byName))
	for k := range byName {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Metrics are the vertical extents of a string, relative to its baseline.
type Metrics struct {
	// Width is the advance width of the whole string.
	Width int16
	// Ascent is how far the tallest glyph reaches above the baseline.
	Ascent int16
	// Descent is how far the lowest glyph reaches below the baseline.
	Descent int16
}

// Measure returns the metrics of s in f.
func Measure(f tinyfont.Fonter, s string) Metrics {
	var m Metrics
	w, _ := tinyfont.LineWidth(f, s)
	m.Width = int16(w)
	for _, r := range s {
		info := f.GetGlyph(r).Info()
		if a := -int16(info.YOffset); a > m.Ascent {
			m.Ascent = a
		}
		if d := int16(info.YOffset) + int16(info.Height); d > m.Descent {
			m.Descent = d
		}
	}
	return m
}

// Advance returns the horizontal advance of a single rune.
func Advance(f tinyfont.Fonter, r rune) int16 {
	return int16(f.GetGlyph(r).Info().XAdvance)
}
