package cryptor

import "fmt"

func checkBlocks(blockSize int, buf, key []byte) error {
	if blockSize <= 0 {
		return ErrInvalidMatrixSize
	}
	if len(key) != blockSize {
		return fmt.Errorf("%w: key is %d bytes, expected %d", ErrInvalidTokenLength, len(key), blockSize)
	}
	if len(buf)%blockSize != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidTokenLength, len(buf), blockSize)
	}
	return nil
}

// Mix XOR chains consecutive blocks of buf, starting with key for the first block.
// Each block is XORed with the already mixed block before it.
func Mix(blockSize int, buf, key []byte) error {
	if err := checkBlocks(blockSize, buf, key); err != nil {
		return err
	}
	prev := key
	for off := 0; off < len(buf); off += blockSize {
		block := buf[off : off+blockSize]
		for j := range block {
			block[j] ^= prev[j]
		}
		prev = block
	}
	return nil
}

// Unmix reverses Mix.
// Blocks are restored last to first, so each predecessor is still in its mixed form when it's used.
func Unmix(blockSize int, buf, key []byte) error {
	if err := checkBlocks(blockSize, buf, key); err != nil {
		return err
	}
	for off := len(buf) - blockSize; off >= 0; off -= blockSize {
		prev := key
		if off > 0 {
			prev = buf[off-blockSize : off]
		}
		block := buf[off : off+blockSize]
		for j := range block {
			block[j] ^= prev[j]
		}
	}
	return nil
}
