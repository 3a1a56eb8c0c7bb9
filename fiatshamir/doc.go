// Package fiatshamir implements the hash-chained transcript that turns the
// interactive Σ-protocol challenge into a non-interactive one: absorb the
// public input and the prover's commitments, then derive R uniform trits
// in {0,1,2} by streaming bits out of the digest two at a time, rejecting
// the value 3 and re-absorbing the digest into itself when the stream is
// exhausted.
package fiatshamir
