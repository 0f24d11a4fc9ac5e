package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ltp "github.com/BackendStack21/ltp-go"
)

// live reads every live record in FIFO order.
func live(t *testing.T, b *Buffer) []uint64 {
	t.Helper()
	out := make([]uint64, 0, b.Len())
	for k := 0; k < b.Len(); k++ {
		v, ok := b.Peek(k)
		require.True(t, ok, "k=%d", k)
		out = append(out, v)
	}
	return out
}

func TestNew_InvalidCapacity(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
	_, err = New(-1)
	assert.Error(t, err)
}

func TestBuffer_SeedCursors(t *testing.T) {
	b, err := New(680)
	require.NoError(t, err)
	for _, v := range []uint64{2, 3, 5, 7} {
		require.NoError(t, b.Push(v))
	}
	assert.Equal(t, 0, b.ProcessFrom())
	assert.Equal(t, 4, b.FreeAt())
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 680, b.Cap())
	assert.Equal(t, []uint64{2, 3, 5, 7}, live(t, b))
}

func TestBuffer_FIFO(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	v, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)

	v, ok = b.Pop()
	require.True(t, ok)
	assert.Equal(t, uint64(2), v)

	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestBuffer_Wraparound(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))
	require.NoError(t, b.Push(3))
	_, _ = b.Pop()
	_, _ = b.Pop()
	require.NoError(t, b.Push(4))
	require.NoError(t, b.Push(5))

	assert.Equal(t, 2, b.ProcessFrom())
	assert.Equal(t, 2, b.FreeAt())
	assert.Equal(t, []uint64{3, 4, 5}, live(t, b))

	v, ok := b.Peek(2)
	require.True(t, ok)
	assert.Equal(t, uint64(5), v)
}

func TestBuffer_FullRejectsPush(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	require.NoError(t, b.Push(13))
	require.NoError(t, b.Push(17))

	err = b.Push(23)
	assert.ErrorIs(t, err, ltp.ErrBufferExhausted)
	// Nothing was overwritten.
	assert.Equal(t, []uint64{13, 17}, live(t, b))

	_, _ = b.Pop()
	assert.NoError(t, b.Push(23))
	assert.Equal(t, []uint64{17, 23}, live(t, b))
}

func TestBuffer_PeekBounds(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	require.NoError(t, b.Push(7))

	_, ok := b.Peek(-1)
	assert.False(t, ok)
	_, ok = b.Peek(1)
	assert.False(t, ok)
	v, ok := b.Peek(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), v)
}
