package cryptor

import (
	"fmt"

	"github.com/saylorsolutions/matrixcrypt/pkg/lcg"
)

// Swap is a single exchange of the bytes at I and J.
type Swap struct {
	I, J int
}

// SwapPairs generates the ordered swaps that Shuffle applies to a buffer of the given length.
// Pairs only depend on their inputs, never on buffer contents, so they can be replayed to invert a shuffle.
func SwapPairs(length int, seed uint64, step int) []Swap {
	if step < 1 {
		panic(fmt.Sprintf("cryptor: shuffle step must be at least 1, got %d", step))
	}
	if length <= 1 {
		return nil
	}
	rng := lcg.New(seed)
	pairs := make([]Swap, 0, (length-1+step-1)/step)
	for i := length - 1; i >= 1; i -= step {
		j := int(rng.Range(0, float64(i)))
		pairs = append(pairs, Swap{I: i, J: j})
	}
	return pairs
}

// Shuffle permutes data in place, using every step-th index from the end as a swap pivot.
func Shuffle(data []byte, seed uint64, step int) {
	for _, s := range SwapPairs(len(data), seed, step) {
		data[s.I], data[s.J] = data[s.J], data[s.I]
	}
}

// Unshuffle reverses a Shuffle with the same seed and step.
func Unshuffle(data []byte, seed uint64, step int) {
	pairs := SwapPairs(len(data), seed, step)
	for i := len(pairs) - 1; i >= 0; i-- {
		s := pairs[i]
		data[s.I], data[s.J] = data[s.J], data[s.I]
	}
}
