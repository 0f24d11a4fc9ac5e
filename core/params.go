// Package core provides parameter sets and validation for ltp-go.
package core

import (
	"fmt"

	ltp "github.com/BackendStack21/ltp-go"
	"github.com/BackendStack21/ltp-go/primality"
	"github.com/BackendStack21/ltp-go/utils"
)

const (
	// DefaultCapacity is the ring size for the full supported range. The search
	// peaks at 634 live records while extending 7-digit LTPs.
	DefaultCapacity = 680

	// DefaultMaxIndex is the number of LTPs with at most nine digits.
	DefaultMaxIndex = 2166
)

// Preset names a parameter set.
type Preset string

const (
	// PresetDefault covers every LTP below 10^9.
	PresetDefault Preset = "default"
	// PresetSmall stops after four-digit LTPs and fits in a tiny buffer.
	PresetSmall Preset = "small"
)

// DefaultParams is the parameter set for the full supported range.
var DefaultParams = ltp.Params{
	Seeds:    []uint64{2, 3, 5, 7},
	Capacity: DefaultCapacity,
	MaxIndex: DefaultMaxIndex,
	MaxOrder: 8,
}

// SmallParams covers LTPs up to four digits.
var SmallParams = ltp.Params{
	Seeds:    []uint64{2, 3, 5, 7},
	Capacity: 128,
	MaxIndex: 153,
	MaxOrder: 3,
}

// GetParams returns a copy of the named parameter set.
func GetParams(preset Preset) (ltp.Params, error) {
	var p ltp.Params
	switch preset {
	case PresetDefault, "":
		p = DefaultParams
	case PresetSmall:
		p = SmallParams
	default:
		return ltp.Params{}, fmt.Errorf("unknown preset: %s", preset)
	}
	p.Seeds = append([]uint64(nil), p.Seeds...)
	return p, nil
}

// SupportedOrder returns the largest order whose candidates all stay below
// primality.MaxSupported. Order k produces numbers with k+1 digits.
func SupportedOrder() int {
	order := 0
	bound := uint64(100) // exclusive bound of candidates at order 1
	for bound <= primality.MaxSupported {
		order++
		bound *= 10
	}
	return order
}

// ValidateParams validates the parameter set for consistency.
func ValidateParams(params ltp.Params) error {
	if len(params.Seeds) == 0 {
		return fmt.Errorf("%w: no seeds", ltp.ErrInvalidParams)
	}
	for i, s := range params.Seeds {
		if s >= 10 {
			return fmt.Errorf("%w: seed %d is not a single-digit prime", ltp.ErrInvalidParams, s)
		}
		prime, err := primality.IsPrime(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ltp.ErrInvalidParams, err)
		}
		if !prime {
			return fmt.Errorf("%w: seed %d is not a single-digit prime", ltp.ErrInvalidParams, s)
		}
		if i > 0 && s <= params.Seeds[i-1] {
			return fmt.Errorf("%w: seeds must be strictly ascending", ltp.ErrInvalidParams)
		}
	}
	if err := utils.CheckPositive(params.Capacity, "capacity"); err != nil {
		return fmt.Errorf("%w: %v", ltp.ErrInvalidParams, err)
	}
	if params.Capacity < len(params.Seeds) {
		return fmt.Errorf("%w: capacity %d cannot hold %d seeds", ltp.ErrInvalidParams, params.Capacity, len(params.Seeds))
	}
	if err := utils.CheckRange(params.MaxOrder, 1, SupportedOrder(), "max order"); err != nil {
		return fmt.Errorf("%w: %v", ltp.ErrInvalidParams, err)
	}
	if err := utils.CheckPositive(params.MaxIndex, "max index"); err != nil {
		return fmt.Errorf("%w: %v", ltp.ErrInvalidParams, err)
	}
	return nil
}

// CheckIndex rejects indices outside [1, params.MaxIndex].
func CheckIndex(params ltp.Params, n int) error {
	if err := utils.CheckRange(n, 1, params.MaxIndex, "index"); err != nil {
		return fmt.Errorf("%w: %v", ltp.ErrInvalidIndex, err)
	}
	return nil
}
