package cryptor

import "errors"

var (
	ErrPayloadTooLarge    = errors.New("payload is too large")
	ErrInvalidTokenLength = errors.New("invalid token matrix length")
	ErrMalformedEncoding  = errors.New("malformed token encoding")
	ErrInvalidText        = errors.New("decrypted payload is not valid UTF-8 text")
	ErrInvalidMatrixSize  = errors.New("matrix size must be greater than 0")
	ErrWriterClosed       = errors.New("write to closed Writer")
)
