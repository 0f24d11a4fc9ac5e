package primality

import "github.com/BackendStack21/ltp-go/arith"

// Tester decides primality. Implementations must be safe for concurrent use.
type Tester interface {
	IsPrime(n uint64) (bool, error)
}

// Deterministic is the Tester backed by IsPrime.
type Deterministic struct{}

// IsPrime implements Tester.
func (Deterministic) IsPrime(n uint64) (bool, error) {
	return IsPrime(n)
}

// IsPrime reports whether n is prime.
// 2 is prime; even numbers and numbers <= 1 are rejected without running any
// witness. Above MaxSupported it returns ltp.ErrUnsupportedMagnitude.
func IsPrime(n uint64) (bool, error) {
	if n == 2 {
		return true, nil
	}
	if n <= 1 || n%2 == 0 {
		return false, nil
	}
	ws, err := SelectWitnesses(n)
	if err != nil {
		return false, err
	}
	return millerRabin(n, ws), nil
}

// millerRabin runs the strong probable-prime test for every witness in ws.
// Witnesses are consumed last to first. An even n, an n below 3 or an empty
// witness set is never reported prime.
func millerRabin(n uint64, ws WitnessSet) bool {
	if n < 3 || n%2 == 0 || len(ws.bases) == 0 {
		return false
	}
	nm1 := n - 1
	d := nm1
	s := 0
	for d%2 == 0 {
		d >>= 1
		s++
	}

	for k := len(ws.bases) - 1; k >= 0; k-- {
		x := arith.ModPow(ws.bases[k], d, n)
		if x == 1 || x == nm1 {
			continue
		}
		passed := false
		for i := 1; i < s; i++ {
			x = arith.MulMod(x, x, n)
			if x == 1 {
				return false
			}
			if x == nm1 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}
