// Package params selects the proof system's security level. Unlike a
// SNARK, ZKBoo needs no structured reference string or trusted ceremony:
// soundness comes purely from running enough independent repetitions, so
// the only parameter a caller picks is a target soundness in bits.
package params
