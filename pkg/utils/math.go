package utils

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Min3 returns the minimum of three integers.
func Min3(a, b, c int) int {
	return Min(Min(a, b), c)
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a.
func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Sqr returns a squared.
func Sqr(a int) int {
	return a * a
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ISqrt returns the integer nearest to the square root of a.
// Ties round down, so ISqrt(2) == 1 and ISqrt(3) == 2.
func ISqrt(a int) int {
	i := 0
	for i*i < a {
		i++
	}
	if i > 0 && i*i-a > a-(i-1)*(i-1) {
		i--
	}
	return i
}
