// Package arith implements the modular arithmetic primitives used by the
// primality test.
package arith

import (
	"fmt"
	"math/bits"

	"github.com/BackendStack21/ltp-go/utils"
)

// maxPow10 is the largest k with 10^k representable in a uint64.
const maxPow10 = 19

// MulMod returns (a * b) mod m.
// The product is formed in 128 bits, so it cannot overflow for any uint64 inputs.
// Panics if m is 0.
func MulMod(a, b, m uint64) uint64 {
	if m == 0 {
		panic("modulus must be positive")
	}
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow computes (base ^ exp) mod m by binary exponentiation.
// Every intermediate product is reduced through MulMod. An exponent of 0 yields
// 1 for any m > 1, and any result mod 1 is 0.
// Panics if m is 0.
func ModPow(base, exp, m uint64) uint64 {
	if m == 0 {
		panic("modulus must be positive")
	}
	if m == 1 {
		return 0
	}
	base %= m
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// Pow10 returns 10^k.
func Pow10(k int) (uint64, error) {
	if k < 0 {
		return 0, fmt.Errorf("negative exponent %d", k)
	}
	if k > maxPow10 {
		return 0, fmt.Errorf("10^%d: %w", k, utils.ErrOverflow)
	}
	v := uint64(1)
	for i := 0; i < k; i++ {
		v *= 10
	}
	return v, nil
}
