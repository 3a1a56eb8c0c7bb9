// Package sha256 implements the SHA-256 compression function as a
// circuit.Circuit, so that a prover can show it knows a preimage (or a
// multi-block message) hashing to a given digest without revealing it.
//
// The message schedule expansion, the compression round's Ch/Maj boolean
// gates, and the round's t1/t2 modular additions are each one or more
// AND/modular-add multiplication gates; XOR, rotate, and shift are free.
package sha256
