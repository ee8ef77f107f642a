package utils

// Clamp constrains val to the inclusive range [lower, upper].
func Clamp(val, lower, upper int) int {
	if val < lower {
		return lower
	}
	if val > upper {
		return upper
	}
	return val
}

// Abs returns the absolute value of val.
func Abs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
