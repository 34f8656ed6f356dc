/*
Package cryptor provides reversible, password-derived obfuscation of arbitrary payloads.

Note that this is NOT encryption in any vetted sense, regardless of the names used in this package.
There is no authentication and no key derivation hardness, so it's NOT recommended for security critical use.
It's useful to keep casual observers from reading data at rest or in transit, and to interoperate with other implementations of the same token format.

# How it works:

A key stream is derived from the password by repeating it until it fills one block (the matrix size, 32 bytes by default).
The payload is framed with a 4-byte big-endian length and a 6-byte time-derived random prefix, then padded to a multiple of the matrix size.
The framed buffer is shuffled as a whole, each block is shuffled again, and then blocks are XOR chained together starting from the key stream.
Finally, a 2-byte seed derived from the random prefix is appended so the shuffles can be replayed.

The resulting layout before mixing is:

	[4 bytes BE: payload length L][6 bytes: random prefix][L bytes: payload][padding, value 1][2 bytes BE: seed]

Every shuffle is driven by a deterministic generator (see package lcg), so decoding replays the same swaps in reverse order.

# Important note:

The matrix size is not part of the token.
The same matrix size and password must be used to reverse the process.
Failing to do so will most likely result in ErrInvalidTokenLength, but may also produce garbage output.
A wrong password is never reported as such.

# General guidelines:
  - A Cryptor is immutable and may be shared between goroutines.
  - Use EncryptText and DecryptText when the token must travel through URLs, headers, or other text channels.
  - Use NewWriter and NewReader to work with io streams, keeping in mind that the whole payload is buffered in memory.
*/
package cryptor
