// Package ltp computes left-truncatable primes.
//
// A left-truncatable prime (LTP) stays prime while its leading digit is removed
// repeatedly, down to a single-digit prime. This package holds the shared types
// and errors; the work is done by the sub-packages:
//
//   - arith: overflow-safe modular multiplication and exponentiation
//   - primality: deterministic Miller-Rabin with magnitude-selected witnesses
//   - ring: the bounded buffer of extendable LTPs
//   - search: the generative search producing the n-th LTP
package ltp

// Version of the ltp-go implementation.
const Version = "1.0.0"

// API summary:
//
// Search:
//   - search.New(params, opts...) - Build an engine for a parameter set
//   - engine.Find(n) - The n-th LTP (1-based)
//   - engine.Walk(n, fn) - Visit the first n LTPs in order
//   - engine.List(n) - The first n LTPs
//
// Primality:
//   - primality.IsPrime(n) - Deterministic decision below primality.MaxSupported
//   - primality.SelectWitnesses(n) - Witness set for a magnitude
//
// Parameters:
//   - core.DefaultParams - Seeds {2,3,5,7}, 680 buffer slots, indices 1..2166
//   - core.ValidateParams(params) - Consistency checks
