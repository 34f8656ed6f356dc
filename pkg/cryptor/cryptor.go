package cryptor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/saylorsolutions/matrixcrypt/pkg/lcg"
)

const (
	DefaultMatrixSize = 32
)

// Cryptor encrypts and decrypts payloads with a fixed matrix size.
// A Cryptor is never mutated after construction, so it's safe to share between goroutines.
type Cryptor struct {
	matrixSize int
	now        func() time.Time
}

// Opt configures a Cryptor in New.
type Opt = func(*Cryptor) error

// MatrixSize sets the block size used for mixing and per-block shuffling.
// Both sides of an exchange must use the same value, since it isn't stored in the token.
func MatrixSize(size int) Opt {
	return func(c *Cryptor) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMatrixSize, size)
		}
		c.matrixSize = size
		return nil
	}
}

func withClock(now func() time.Time) Opt {
	return func(c *Cryptor) error {
		c.now = now
		return nil
	}
}

// New creates a Cryptor using DefaultMatrixSize, unless overridden with MatrixSize.
func New(opts ...Opt) (*Cryptor, error) {
	c := &Cryptor{
		matrixSize: DefaultMatrixSize,
		now:        time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithMatrix returns a copy of the Cryptor using the given matrix size.
// The receiver is returned unchanged if size is not positive.
func (c *Cryptor) WithMatrix(size int) *Cryptor {
	if size <= 0 {
		return c
	}
	cp := *c
	cp.matrixSize = size
	return &cp
}

// MatrixSize returns the configured block size.
func (c *Cryptor) MatrixSize() int {
	return c.matrixSize
}

// blockSeed seeds the shuffle of block i with the first byte of the following block, or the first key byte for the last block.
func blockSeed(data []byte, i, matrixSize int, key []byte) uint64 {
	next := (i + 1) * matrixSize
	if next < len(data) {
		return uint64(data[next])
	}
	return uint64(key[0])
}

// Encrypt frames, permutes, and mixes payload using a key stream derived from password.
func (c *Cryptor) Encrypt(payload []byte, password string) ([]byte, error) {
	if err := checkPayloadLen(uint64(len(payload))); err != nil {
		return nil, err
	}
	m := c.matrixSize
	key := KeyStream(m, []byte(password))

	h := &header{length: uint32(len(payload))}
	copy(h.prefix[:], lcg.NewFromTime(c.now()).Bytes(prefixLen))
	seedRandom := h.seed()

	buf, err := frame(h, payload, m)
	if err != nil {
		return nil, err
	}
	data := buf.Bytes()

	Shuffle(data, keySum(key)+seedRandom, globalStep)
	blocks := len(data) / m
	for i := 0; i < blocks; i++ {
		Shuffle(data[i*m:(i+1)*m], blockSeed(data, i, m, key)+seedRandom, blockStep)
	}
	if err := Mix(m, data, key); err != nil {
		return nil, err
	}

	t := &tail{seed: uint16(seedRandom)}
	if err := t.mapper().Write(buf, frameOrder); err != nil {
		return nil, fmt.Errorf("failed to write seed tail: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt reverses Encrypt.
// The password is never verified, a wrong password usually results in ErrInvalidTokenLength.
// The encoded slice is not modified.
func (c *Cryptor) Decrypt(encoded []byte, password string) ([]byte, error) {
	if len(encoded) < minTokenLen {
		return nil, fmt.Errorf("%w: token is only %d bytes", ErrInvalidTokenLength, len(encoded))
	}
	bodyLen := len(encoded) - tailLen
	var t tail
	if err := t.mapper().Read(bytes.NewReader(encoded[bodyLen:]), frameOrder); err != nil {
		return nil, fmt.Errorf("%w: unable to read seed tail: %v", ErrInvalidTokenLength, err)
	}
	seedRandom := uint64(t.seed)

	m := c.matrixSize
	key := KeyStream(m, []byte(password))
	data := make([]byte, bodyLen)
	copy(data, encoded[:bodyLen])

	if err := Unmix(m, data, key); err != nil {
		return nil, err
	}
	for i := len(data)/m - 1; i >= 0; i-- {
		Unshuffle(data[i*m:(i+1)*m], blockSeed(data, i, m, key)+seedRandom, blockStep)
	}
	Unshuffle(data, keySum(key)+seedRandom, globalStep)
	return unframe(data)
}
