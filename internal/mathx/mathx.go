// Package mathx holds the small integer helpers shared by the scheduler and the renderers.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundDiv returns a/b rounded half up. Division by zero returns 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// Lerp maps step in [0, steps] linearly onto [lo, hi] using integer maths only. A zero steps count returns lo.
func Lerp[T constraints.Integer](lo, hi, step, steps T) T {
	if steps == 0 {
		return lo
	}
	return lo + step*(hi-lo)/steps
}
