package arith

import (
	"math"
	"math/big"
	"testing"

	"github.com/cznic/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BackendStack21/ltp-go/utils"
)

func TestModPow_ZeroExponent(t *testing.T) {
	for _, m := range []uint64{2, 3, 7, 1 << 40, math.MaxUint64} {
		assert.Equal(t, uint64(1), ModPow(0, 0, m), "0^0 mod %d", m)
		assert.Equal(t, uint64(1), ModPow(12345, 0, m), "12345^0 mod %d", m)
	}
}

func TestModPow_ModulusOne(t *testing.T) {
	for _, tc := range [][2]uint64{{0, 0}, {1, 1}, {2, 10}, {math.MaxUint64, math.MaxUint64}} {
		assert.Equal(t, uint64(0), ModPow(tc[0], tc[1], 1))
	}
}

func TestModPow_Known(t *testing.T) {
	assert.Equal(t, uint64(1), ModPow(2, 10, 1023))
	assert.Equal(t, uint64(445), ModPow(4, 13, 497))
	// Fermat: a^(p-1) = 1 mod p
	assert.Equal(t, uint64(1), ModPow(61, 999962682, 999962683))
}

func TestModPow_AgainstMathutil(t *testing.T) {
	moduli := []uint64{3, 2047, 1373653, 4759123141, 1<<32 - 5, 1<<62 + 135}
	for _, m := range moduli {
		for _, b := range []uint64{2, 3, 7, 31, 61, 73, m - 1} {
			for _, e := range []uint64{1, 2, 17, 1 << 20, m - 1} {
				want := mathutil.ModPowUint64(b, e, m)
				assert.Equal(t, want, ModPow(b, e, m), "%d^%d mod %d", b, e, m)
			}
		}
	}
}

func TestMulMod_NoOverflow(t *testing.T) {
	// (m-1)^2 overflows 64 bits for m above 2^32.
	m := uint64(4759123141)
	want := new(big.Int).Mul(big.NewInt(int64(m-1)), big.NewInt(int64(m-1)))
	want.Mod(want, new(big.Int).SetUint64(m))
	assert.Equal(t, want.Uint64(), MulMod(m-1, m-1, m))
}

func TestMulMod_PanicZero(t *testing.T) {
	assert.Panics(t, func() { MulMod(1, 1, 0) })
	assert.Panics(t, func() { ModPow(1, 1, 0) })
}

func TestPow10(t *testing.T) {
	v, err := Pow10(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = Pow10(9)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000000), v)

	v, err = Pow10(19)
	require.NoError(t, err)
	assert.Equal(t, uint64(10000000000000000000), v)

	_, err = Pow10(20)
	assert.ErrorIs(t, err, utils.ErrOverflow)

	_, err = Pow10(-1)
	assert.Error(t, err)
}

func FuzzModPow(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint64(1))
	f.Add(uint64(2), uint64(1022), uint64(2047))
	f.Add(uint64(math.MaxUint64), uint64(math.MaxUint64), uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, b, e, m uint64) {
		if m == 0 {
			return
		}
		want := new(big.Int).Exp(new(big.Int).SetUint64(b), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m))
		if got := ModPow(b, e, m); got != want.Uint64() {
			t.Fatalf("ModPow(%d, %d, %d) = %d; want %d", b, e, m, got, want.Uint64())
		}
	})
}
