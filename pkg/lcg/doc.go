/*
Package lcg provides a tiny, deterministic 64-bit linear congruential generator.

This is NOT a source of secure randomness, and it's not intended to be.
The only property it guarantees is that the same seed always produces the same sequence of values, on any platform.
That property is what lets the cryptor package replay a permutation during decoding without storing it.

For anything security related, use crypto/rand instead.
*/
package lcg
