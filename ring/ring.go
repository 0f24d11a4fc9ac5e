// Package ring implements the fixed-capacity buffer that holds extendable LTPs
// between search rounds.
package ring

import (
	"fmt"

	ltp "github.com/BackendStack21/ltp-go"
	"github.com/BackendStack21/ltp-go/utils"
)

// Buffer is a FIFO ring of uint64 records.
//
// ProcessFrom is the slot of the oldest live record and FreeAt the slot the
// next Push writes to. A full buffer rejects Push instead of overwriting.
type Buffer struct {
	slots       []uint64
	processFrom int
	freeAt      int
	live        int
}

// New returns an empty buffer with the given number of slots.
func New(capacity int) (*Buffer, error) {
	if err := utils.CheckPositive(capacity, "capacity"); err != nil {
		return nil, err
	}
	return &Buffer{slots: make([]uint64, capacity)}, nil
}

// Cap returns the number of slots.
func (b *Buffer) Cap() int { return len(b.slots) }

// Len returns the number of live records.
func (b *Buffer) Len() int { return b.live }

// ProcessFrom returns the read cursor.
func (b *Buffer) ProcessFrom() int { return b.processFrom }

// FreeAt returns the write cursor.
func (b *Buffer) FreeAt() int { return b.freeAt }

// Push appends v at FreeAt.
func (b *Buffer) Push(v uint64) error {
	if b.live == len(b.slots) {
		return fmt.Errorf("push %d with %d live records: %w", v, b.live, ltp.ErrBufferExhausted)
	}
	b.slots[b.freeAt] = v
	b.freeAt = b.next(b.freeAt)
	b.live++
	return nil
}

// Pop removes and returns the record at ProcessFrom.
func (b *Buffer) Pop() (uint64, bool) {
	if b.live == 0 {
		return 0, false
	}
	v := b.slots[b.processFrom]
	b.processFrom = b.next(b.processFrom)
	b.live--
	return v, true
}

// Peek returns the k-th live record counting from ProcessFrom.
func (b *Buffer) Peek(k int) (uint64, bool) {
	if k < 0 || k >= b.live {
		return 0, false
	}
	return b.slots[(b.processFrom+k)%len(b.slots)], true
}

func (b *Buffer) next(i int) int {
	i++
	if i == len(b.slots) {
		return 0
	}
	return i
}
