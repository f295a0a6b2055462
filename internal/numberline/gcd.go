package numberline

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce divides num and den by their greatest common divisor.
func reduce(num, den int) (int, int) {
	if g := gcd(num, den); g > 1 {
		return num / g, den / g
	}
	return num, den
}
