package cryptor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapPairs(t *testing.T) {
	tests := map[string]struct {
		length   int
		seed     uint64
		step     int
		expected []Swap
	}{
		"Global step": {
			length:   10,
			seed:     7,
			step:     5,
			expected: []Swap{{9, 4}, {4, 3}},
		},
		"Block step": {
			length:   8,
			seed:     3,
			step:     2,
			expected: []Swap{{7, 0}, {5, 1}, {3, 2}, {1, 0}},
		},
		"Empty": {
			length: 0,
			seed:   3,
			step:   2,
		},
		"Single": {
			length: 1,
			seed:   3,
			step:   1,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			pairs := SwapPairs(tc.length, tc.seed, tc.step)
			assert.Equal(t, tc.expected, pairs)
			for _, s := range pairs {
				assert.Less(t, s.I, tc.length)
				assert.LessOrEqual(t, s.J, s.I)
			}
		})
	}
}

func TestSwapPairs_Count(t *testing.T) {
	for length := 2; length < 50; length++ {
		for step := 1; step <= 6; step++ {
			expected := (length - 1 + step - 1) / step
			assert.Len(t, SwapPairs(length, 1, step), expected, "length %d, step %d", length, step)
		}
	}
}

func TestSwapPairs_BadStep(t *testing.T) {
	assert.Panics(t, func() {
		SwapPairs(10, 1, 0)
	})
}

func TestShuffleUnshuffle(t *testing.T) {
	for length := 0; length < 100; length++ {
		orig := make([]byte, length)
		for i := range orig {
			orig[i] = byte(i)
		}
		for _, step := range []int{1, 2, 5} {
			buf := bytes.Clone(orig)
			Shuffle(buf, uint64(length*31+step), step)
			assert.ElementsMatch(t, orig, buf, "Shuffle should only move bytes around")
			Unshuffle(buf, uint64(length*31+step), step)
			assert.Equal(t, orig, buf, "length %d, step %d", length, step)
		}
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a := []byte("a buffer that will be shuffled twice")
	b := append([]byte(nil), a...)
	Shuffle(a, 1234, 1)
	Shuffle(b, 1234, 1)
	assert.Equal(t, a, b)
	assert.NotEqual(t, []byte("a buffer that will be shuffled twice"), a)
}

func TestShuffle_DataIndependent(t *testing.T) {
	// Same seed and length, so both buffers should end up with the same arrangement of positions.
	zeros := make([]byte, 20)
	idx := make([]byte, 20)
	for i := range idx {
		idx[i] = byte(i)
	}
	Shuffle(idx, 42, 2)
	Shuffle(zeros, 42, 2)
	assert.Equal(t, make([]byte, 20), zeros)

	expected := make([]byte, 20)
	for i := range expected {
		expected[i] = byte(i)
	}
	for _, s := range SwapPairs(20, 42, 2) {
		expected[s.I], expected[s.J] = expected[s.J], expected[s.I]
	}
	assert.True(t, bytes.Equal(expected, idx))
}
