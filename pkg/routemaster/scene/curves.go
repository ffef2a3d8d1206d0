package scene

import "math"

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates. Used for scenes entering the screen.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Bisection on x, then sample y.
		lo, hi := 0.0, 1.0
		u := t
		for range 24 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

func bezier(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
}
