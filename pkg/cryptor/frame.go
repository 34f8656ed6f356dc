package cryptor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	bin "github.com/saylorsolutions/binmap"
)

const (
	lengthFieldLen = 4
	prefixLen      = 6
	headerLen      = lengthFieldLen + prefixLen
	tailLen        = 2
	minTokenLen    = 6
	padByte        = byte(1)
	globalStep     = 5
	blockStep      = 2
)

var frameOrder = binary.BigEndian

// header leads every framed buffer, before any permutation is applied.
type header struct {
	length uint32
	prefix [prefixLen]byte
}

func (h *header) mapper() bin.Mapper {
	mappers := []bin.Mapper{bin.Int(&h.length)}
	for i := range h.prefix {
		mappers = append(mappers, bin.Byte(&h.prefix[i]))
	}
	return bin.MapSequence(mappers...)
}

// seed sums the prefix bytes. The sum can't exceed 16 bits, so it survives the trip through the tail.
func (h *header) seed() uint64 {
	var sum uint16
	for _, b := range h.prefix {
		sum += uint16(b)
	}
	return uint64(sum)
}

// tail is the clear-text seed appended after mixing.
type tail struct {
	seed uint16
}

func (t *tail) mapper() bin.Mapper {
	return bin.Int(&t.seed)
}

func checkPayloadLen(n uint64) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes exceeds the 32-bit length field", ErrPayloadTooLarge, n)
	}
	return nil
}

func padLen(matrixSize, payloadLen int) int {
	return (matrixSize - (headerLen+payloadLen)%matrixSize) % matrixSize
}

// frame writes the header, payload, and padding to a new buffer with room left for the tail.
func frame(h *header, payload []byte, matrixSize int) (*bytes.Buffer, error) {
	pad := padLen(matrixSize, len(payload))
	buf := bytes.NewBuffer(make([]byte, 0, headerLen+len(payload)+pad+tailLen))
	if err := h.mapper().Write(buf, frameOrder); err != nil {
		return nil, fmt.Errorf("failed to write frame header: %w", err)
	}
	buf.Write(payload)
	buf.Write(bytes.Repeat([]byte{padByte}, pad))
	return buf, nil
}

// unframe parses the header of an already restored buffer and returns the payload it describes.
func unframe(data []byte) ([]byte, error) {
	var h header
	if err := h.mapper().Read(bytes.NewReader(data), frameOrder); err != nil {
		return nil, fmt.Errorf("%w: unable to read frame header: %v", ErrInvalidTokenLength, err)
	}
	if uint64(len(data)) < uint64(h.length)+headerLen {
		return nil, fmt.Errorf("%w: length field %d exceeds %d available bytes", ErrInvalidTokenLength, h.length, len(data)-headerLen)
	}
	return data[headerLen : headerLen+int(h.length)], nil
}
