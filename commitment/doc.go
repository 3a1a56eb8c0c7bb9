// Package commitment implements the keyed-hash commitment scheme used to
// bind a prover to each party's view before the verifier's challenge is
// known: commit(k, m) = H(k || m), using Keccak-256 as H.
package commitment
