package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ClampAxis clamps v into [lo, hi]. hi wins when the range is inverted.
func ClampAxis(v, lo, hi float64) float64 {
	return cp.Clamp(v, lo, hi)
}

// InterpolateU8 blends two channel values, truncating like a byte cast.
func InterpolateU8(start, end uint8, fade float64) uint8 {
	return uint8(float64(start)*(1-fade) + float64(end)*fade)
}
