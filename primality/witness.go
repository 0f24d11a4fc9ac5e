// Package primality implements a deterministic Miller-Rabin test for the
// magnitudes the search reaches.
package primality

import (
	"fmt"
	"slices"

	ltp "github.com/BackendStack21/ltp-go"
)

// MaxSupported is the exclusive upper bound of the witness table.
const MaxSupported uint64 = 4759123141

// WitnessSet is an ordered set of Miller-Rabin bases that decides primality
// correctly for every odd n below Limit.
type WitnessSet struct {
	Limit uint64
	bases []uint64
}

// Bases returns a copy of the witnesses.
func (w WitnessSet) Bases() []uint64 {
	return slices.Clone(w.bases)
}

// Len returns the number of witnesses.
func (w WitnessSet) Len() int {
	return len(w.bases)
}

// witnessTable is ordered by Limit; the first row whose Limit exceeds n wins.
var witnessTable = []WitnessSet{
	{Limit: 2047, bases: []uint64{2}},
	{Limit: 1373653, bases: []uint64{2, 3}},
	{Limit: 9080191, bases: []uint64{31, 73}},
	{Limit: 25326001, bases: []uint64{2, 3, 5}},
	{Limit: MaxSupported, bases: []uint64{2, 7, 61}},
}

// SelectWitnesses returns the witness set for n.
// It fails with ltp.ErrUnsupportedMagnitude when n >= MaxSupported.
func SelectWitnesses(n uint64) (WitnessSet, error) {
	for _, w := range witnessTable {
		if n < w.Limit {
			return w, nil
		}
	}
	return WitnessSet{}, fmt.Errorf("%d >= %d: %w", n, MaxSupported, ltp.ErrUnsupportedMagnitude)
}
