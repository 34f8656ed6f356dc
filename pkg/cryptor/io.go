package cryptor

import (
	"bytes"
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse the Cryptor and password with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader, discarding any decrypted data that hasn't been read yet.
	Reset(source io.Reader)
}

// Writer extends io.WriteCloser, but also provides a way to reuse the Cryptor and password with a different target.
// Nothing is written to the target until Close is called, because the whole payload is needed to frame it.
type Writer interface {
	io.WriteCloser
	// Reset will use the provided io.Writer, discarding any buffered data.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source   io.Reader
	cryptor  *Cryptor
	password string
	plain    *bytes.Reader
	err      error
}

// NewReader constructs a Reader that reads a whole token from r on the first call to Read, and yields the decrypted payload.
func NewReader(r io.Reader, c *Cryptor, password string) Reader {
	return &reader{
		source:   r,
		cryptor:  c,
		password: password,
	}
}

func (r *reader) Read(out []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.plain == nil {
		token, err := io.ReadAll(r.source)
		if err != nil {
			r.err = err
			return 0, err
		}
		plain, err := r.cryptor.Decrypt(token, r.password)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.plain = bytes.NewReader(plain)
	}
	return r.plain.Read(out)
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.plain = nil
	r.err = nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target   io.Writer
	cryptor  *Cryptor
	password string
	buf      bytes.Buffer
	closed   bool
}

// NewWriter constructs a Writer that buffers everything written to it, and writes the encrypted token to target on Close.
func NewWriter(target io.Writer, c *Cryptor, password string) Writer {
	return &writer{
		target:   target,
		cryptor:  c,
		password: password,
	}
}

func (w *writer) Write(in []byte) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.buf.Write(in)
}

// Close encrypts the buffered payload and writes the token to the target.
// The target is not closed.
func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	token, err := w.cryptor.Encrypt(w.buf.Bytes(), w.password)
	if err != nil {
		return err
	}
	w.buf.Reset()
	_, err = w.target.Write(token)
	return err
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.buf.Reset()
	w.closed = false
}
