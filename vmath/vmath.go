package vmath

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp constrains v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt constrains v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange maps v from [inLo, inHi] to [outLo, outHi]
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	return (v-inLo)*(outHi-outLo)/(inHi-inLo) + outLo
}
