package cryptor

// KeyStream repeats password until it fills exactly matrixSize bytes.
// An empty password produces matrixSize zero bytes.
func KeyStream(matrixSize int, password []byte) []byte {
	ks := make([]byte, matrixSize)
	if len(password) == 0 {
		return ks
	}
	for off := 0; off < matrixSize; off += len(password) {
		copy(ks[off:], password)
	}
	return ks
}

func keySum(ks []byte) uint64 {
	var sum uint64
	for _, b := range ks {
		sum += uint64(b)
	}
	return sum
}
