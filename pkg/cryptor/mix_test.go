package cryptor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	require.NoError(t, Mix(2, buf, []byte{0x0f, 0xf0}))
	assert.Equal(t, []byte{0x0e, 0xf2, 0x0d, 0xf6}, buf)

	require.NoError(t, Unmix(2, buf, []byte{0x0f, 0xf0}))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}

func TestMix_IdenticalBlocks(t *testing.T) {
	buf := bytes.Repeat([]byte("same"), 4)
	require.NoError(t, Mix(4, buf, []byte{1, 2, 3, 4}))
	assert.NotEqual(t, buf[0:4], buf[4:8])
	assert.NotEqual(t, buf[4:8], buf[8:12])
}

func TestMixUnmix(t *testing.T) {
	for _, size := range []int{1, 3, 16, 32} {
		key := KeyStream(size, []byte("mix key"))
		for blocks := 0; blocks < 5; blocks++ {
			orig := make([]byte, size*blocks)
			for i := range orig {
				orig[i] = byte(i * 7)
			}
			buf := bytes.Clone(orig)
			require.NoError(t, Mix(size, buf, key))
			require.NoError(t, Unmix(size, buf, key))
			assert.Equal(t, orig, buf, "size %d, blocks %d", size, blocks)
		}
	}
}

func TestMix_Neg(t *testing.T) {
	tests := map[string]struct {
		size     int
		buf, key []byte
		err      error
	}{
		"Zero size": {
			size: 0,
			err:  ErrInvalidMatrixSize,
		},
		"Short key": {
			size: 4,
			buf:  make([]byte, 4),
			key:  make([]byte, 3),
			err:  ErrInvalidTokenLength,
		},
		"Partial block": {
			size: 4,
			buf:  make([]byte, 6),
			key:  make([]byte, 4),
			err:  ErrInvalidTokenLength,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, Mix(tc.size, tc.buf, tc.key), tc.err)
			assert.ErrorIs(t, Unmix(tc.size, tc.buf, tc.key), tc.err)
		})
	}
}
