// Package utils provides utility functions for ltp-go.
// This file contains overflow-checked arithmetic and range checks used when
// building candidates and validating caller input.

package utils

import (
	"errors"
	"fmt"
	"math"
)

// MaxListLength bounds how many values a single listing may hold.
const MaxListLength = 1 << 16

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMultiply multiplies two unsigned integers and returns an error if overflow occurs.
func SafeMultiply(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxUint64/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// SafeAdd adds two unsigned integers and returns an error if overflow occurs.
func SafeAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}

// SafeMultiplyAdd returns base + digit*scale, the shape of every search candidate.
func SafeMultiplyAdd(base, digit, scale uint64) (uint64, error) {
	prod, err := SafeMultiply(digit, scale)
	if err != nil {
		return 0, err
	}
	return SafeAdd(base, prod)
}

// SafeMakeUint32Slice creates a uint32 slice with bounds checking.
func SafeMakeUint32Slice(count, maxAllowed int) ([]uint32, error) {
	if count < 0 {
		return nil, ErrInvalidLength
	}
	if count > maxAllowed {
		return nil, ErrExceedsLimit
	}
	return make([]uint32, 0, count), nil
}

// CheckRange validates that value lies in [lo, hi].
func CheckRange(value, lo, hi int, name string) error {
	if value < lo || value > hi {
		return fmt.Errorf("%s %d outside [%d, %d]", name, value, lo, hi)
	}
	return nil
}

// CheckPositive validates that value is > 0.
func CheckPositive(value int, name string) error {
	if value <= 0 {
		return errors.New(name + " must be positive")
	}
	return nil
}
