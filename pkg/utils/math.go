package utils

import "math/bits"

// MaxPowerOfTwo is the largest power of two CeilToPowerOfTwo can return.
const MaxPowerOfTwo = 1 << (bits.UintSize - 2)

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
// Values below 2 return 2. It panics if n is above MaxPowerOfTwo.
func CeilToPowerOfTwo(n int) int {
	if n > MaxPowerOfTwo {
		panic("argument is too large")
	}
	if n <= 2 {
		return 2
	}
	return 1 << bits.Len(uint(n-1))
}
