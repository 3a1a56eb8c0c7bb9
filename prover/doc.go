// Package prover implements the zkboo prover: share the witness three
// ways, run R independent three-party circuit simulations in parallel,
// commit to each party's view, derive the Fiat-Shamir challenge from the
// full transcript, and open the two parties per repetition the challenge
// selects.
package prover
