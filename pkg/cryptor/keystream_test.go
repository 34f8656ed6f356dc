package cryptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStream(t *testing.T) {
	tests := map[string]struct {
		size     int
		password string
		expected []byte
	}{
		"Tiled":     {size: 8, password: "abc", expected: []byte("abcabcab")},
		"Exact":     {size: 3, password: "abc", expected: []byte("abc")},
		"Truncated": {size: 2, password: "abc", expected: []byte("ab")},
		"Empty":     {size: 4, password: "", expected: []byte{0, 0, 0, 0}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ks := KeyStream(tc.size, []byte(tc.password))
			assert.Equal(t, tc.expected, ks)
			assert.Len(t, ks, tc.size)
		})
	}
}

func TestKeySum(t *testing.T) {
	assert.Equal(t, uint64(0), keySum(nil))
	assert.Equal(t, uint64(255*4), keySum([]byte{255, 255, 255, 255}))
}
