// Package word provides fixed-width unsigned word algebra over GF(2): XOR,
// AND, NOT, shifts, rotates, single-bit access and cryptographically random
// generation, for every width the engine needs to run a circuit over
// (8, 32, 64 and 128 bits).
//
// Word is modeled as an interface over four concrete, hand-written types
// (Word8, Word32, Word64, Word128) instead of a generic type parameterized
// by a numeric constraint, since Word128 has no native Go integer type to
// parameterize over.
package word
