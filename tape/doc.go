// Package tape generates the deterministic pseudo-random stream each
// simulated party draws its share of multiplication-gate randomness from.
//
// A tape is seeded once from a 32-byte key and expanded with ChaCha20 used
// as a keystream generator rather than a cipher: the plaintext is an
// all-zero buffer, so the ciphertext the stream produces is the keystream
// itself. Keys are fresh per party per repetition, so the nonce is fixed at
// all-zero. The verifier seeds a second tape from an opened key, which
// reproduces the prover's keystream exactly; since the keystream is used
// directly as randomness and never to encrypt data, this reuse exposes
// nothing.
package tape
