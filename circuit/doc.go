// Package circuit defines the interface between the proof engine and a
// user-supplied boolean circuit: plain evaluation, the prover's three-party
// decomposition, and the verifier's two-party re-simulation.
package circuit
