package cryptor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	data := "A string with some text"
	c, err := New(MatrixSize(16))
	require.NoError(t, err)

	var token bytes.Buffer
	w := NewWriter(&token, c, "key")
	n, err := io.Copy(w, strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, 0, token.Len(), "Nothing should be written before Close")
	require.NoError(t, w.Close())
	assert.Equal(t, 2, token.Len()%16)

	var output strings.Builder
	r := NewReader(&token, c, "key")
	_, err = io.Copy(&output, r)
	require.NoError(t, err)
	assert.Equal(t, data, output.String())
}

func TestWriter_Closed(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	var out bytes.Buffer
	w := NewWriter(&out, c, "key")
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Closing twice should be harmless")

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrWriterClosed)

	plain, err := c.Decrypt(out.Bytes(), "key")
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestWriter_Reset(t *testing.T) {
	var (
		outA bytes.Buffer
		outB bytes.Buffer
	)
	c, err := New()
	require.NoError(t, err)
	w := NewWriter(&outA, c, "key")
	_, err = w.Write([]byte("first"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w.Reset(&outB)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	a, err := c.Decrypt(outA.Bytes(), "key")
	require.NoError(t, err)
	assert.Equal(t, "first", string(a))
	b, err := c.Decrypt(outB.Bytes(), "key")
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestReader_Reset(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	token, err := c.Encrypt([]byte{0x0, 0x1}, "key")
	require.NoError(t, err)

	out := make([]byte, 2)
	r := NewReader(bytes.NewReader(token), c, "key")
	n, err := r.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x0, 0x1}, out)

	r.Reset(bytes.NewReader(token))
	out = make([]byte, 2)
	n, err = r.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x0, 0x1}, out)
}

func TestReader_Neg(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	r := NewReader(strings.NewReader("short"), c, "key")
	_, err = io.ReadAll(r)
	assert.ErrorIs(t, err, ErrInvalidTokenLength)

	_, err = r.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrInvalidTokenLength, "Errors should be sticky until Reset")
}
