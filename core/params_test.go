package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ltp "github.com/BackendStack21/ltp-go"
)

func TestGetParams(t *testing.T) {
	params, err := GetParams(PresetDefault)
	require.NoError(t, err)
	assert.Equal(t, 680, params.Capacity)
	assert.Equal(t, 2166, params.MaxIndex)
	assert.Equal(t, 8, params.MaxOrder)

	small, err := GetParams(PresetSmall)
	require.NoError(t, err)
	assert.Equal(t, 153, small.MaxIndex)

	_, err = GetParams("INVALID")
	assert.Error(t, err)

	// Returned seeds must not alias the preset
	params.Seeds[0] = 9
	assert.Equal(t, uint64(2), DefaultParams.Seeds[0])
}

func TestSupportedOrder(t *testing.T) {
	// Nine-digit candidates are the largest that stay under 4,759,123,141.
	assert.Equal(t, 8, SupportedOrder())
}

func TestValidateParams(t *testing.T) {
	params, err := GetParams(PresetDefault)
	require.NoError(t, err)
	require.NoError(t, ValidateParams(params))

	cases := map[string]func(p *ltp.Params){
		"no seeds":        func(p *ltp.Params) { p.Seeds = nil },
		"composite seed":  func(p *ltp.Params) { p.Seeds = []uint64{2, 3, 5, 9} },
		"seed one":        func(p *ltp.Params) { p.Seeds = []uint64{1, 2} },
		"seed zero":       func(p *ltp.Params) { p.Seeds = []uint64{0} },
		"two-digit seed":  func(p *ltp.Params) { p.Seeds = []uint64{2, 11} },
		"unordered seeds": func(p *ltp.Params) { p.Seeds = []uint64{3, 2} },
		"zero capacity":   func(p *ltp.Params) { p.Capacity = 0 },
		"tiny capacity":   func(p *ltp.Params) { p.Capacity = 3 },
		"zero order":      func(p *ltp.Params) { p.MaxOrder = 0 },
		"order too large": func(p *ltp.Params) { p.MaxOrder = 9 },
		"zero max index":  func(p *ltp.Params) { p.MaxIndex = 0 },
	}
	for name, mutate := range cases {
		invalid, err := GetParams(PresetDefault)
		require.NoError(t, err)
		mutate(&invalid)
		assert.ErrorIs(t, ValidateParams(invalid), ltp.ErrInvalidParams, name)
	}
}

func TestValidateParams_SeedSubsets(t *testing.T) {
	for _, seeds := range [][]uint64{{2}, {3, 7}, {2, 3, 5, 7}} {
		params, err := GetParams(PresetSmall)
		require.NoError(t, err)
		params.Seeds = seeds
		assert.NoError(t, ValidateParams(params), "seeds %v", seeds)
	}
}

func TestCheckIndex(t *testing.T) {
	for _, n := range []int{1, 4, 2166} {
		assert.NoError(t, CheckIndex(DefaultParams, n), "n=%d", n)
	}
	for _, n := range []int{-1, 0, 2167} {
		assert.ErrorIs(t, CheckIndex(DefaultParams, n), ltp.ErrInvalidIndex, "n=%d", n)
	}
}
