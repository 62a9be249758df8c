package vgcanvas

import "math"

// applySpread maps t into [0, 1] according to the spread method.
func applySpread(t float64, spread SpreadMethod) float64 {
	switch spread {
	case SpreadRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // SpreadPad
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	return t
}

// colorAt samples the stop sequence at parameter t, returning
// premultiplied channels. Stops are walked in the given order; the
// sequence is never sorted, so out-of-order offsets produce
// deterministic but visually undefined output.
func (stops GradientStops) colorAt(t float64, spread SpreadMethod) (r, g, b, a uint8) {
	if len(stops) == 0 {
		return 0, 0, 0, 0
	}
	if len(stops) == 1 {
		return stops[0].Color.premul()
	}

	t = applySpread(t, spread)

	if t <= stops[0].Offset {
		return stops[0].Color.premul()
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color.premul()
	}

	for i := 1; i < len(stops); i++ {
		s0 := stops[i-1]
		s1 := stops[i]
		if t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s1.Color.premul()
		}
		local := (t - s0.Offset) / (s1.Offset - s0.Offset)
		return lerpPremul(s0.Color, s1.Color, local)
	}
	return last.Color.premul()
}

// lerpPremul interpolates two colors channel-wise and premultiplies the
// result. Interpolation happens on straight channels in sRGB, matching
// the flat ramp of the reference rasterizer rather than a linear-light
// ramp.
func lerpPremul(c0, c1 Color, t float64) (r, g, b, a uint8) {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	c := Color{
		R: lerp(c0.R, c1.R),
		G: lerp(c0.G, c1.G),
		B: lerp(c0.B, c1.B),
		A: lerp(c0.A, c1.A),
	}
	return c.premul()
}
