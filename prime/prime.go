// Package prime tests integers for primality, treating -p as prime
// whenever p is.
package prime

// IsUnnaturalPrime reports whether |n| is prime. 0, 1 and -1 are not.
//
// Trial division up to √|n|: O(√|n|) time, O(1) space. math.MinInt is
// handled through an unsigned magnitude.
func IsUnnaturalPrime(n int) bool {
	return isPrime(magnitude(n))
}

// magnitude returns |n| without overflowing on math.MinInt.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func isPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
