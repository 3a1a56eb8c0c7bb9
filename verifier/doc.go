// Package verifier implements the zkboo verifier: for each repetition,
// reconstruct two parties from the opened proof, re-simulate the circuit,
// derive the third party's output (its commitment is taken from the
// proof) and recompute the two opened commitments, then check the
// re-derived Fiat-Shamir trits against the proof's claimed trits.
package verifier
