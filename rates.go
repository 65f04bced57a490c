package oledcounter

import (
	"strconv"
)

// DefaultRates are the frame rates the button cycles through.
var DefaultRates = []uint32{1, 2, 5, 10, 30}

// RateCycle is a cursor into a fixed, ordered list of frame rates.
type RateCycle struct {
	rates []uint32
	idx   int
}

func NewRateCycle(rates []uint32) (*RateCycle, error) {
	if len(rates) == 0 {
		return nil, newError(RateOutOfRange, "rate list", "empty", nil)
	}
	for _, r := range rates {
		if r == 0 || r > MaxFrameRate {
			return nil, newError(RateOutOfRange, "rate list", "rate "+strconv.FormatUint(uint64(r), 10), nil)
		}
	}
	c := &RateCycle{rates: make([]uint32, len(rates))}
	copy(c.rates, rates)
	return c, nil
}

func (c *RateCycle) Current() uint32 { return c.rates[c.idx] }

func (c *RateCycle) Index() int { return c.idx }

func (c *RateCycle) Len() int { return len(c.rates) }

// Advance moves to the next rate, wrapping around at the end of the list, and returns it.
func (c *RateCycle) Advance() uint32 {
	c.idx = (c.idx + 1) % len(c.rates)
	return c.rates[c.idx]
}
