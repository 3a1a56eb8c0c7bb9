// Package zkboo implements a non-interactive zero-knowledge proof system
// for boolean circuits over GF(2), following the ZKBoo / ZKB++ family:
// MPC-in-the-head three-party simulation of a (2,3)-decomposition, a
// Sigma-protocol commit-challenge-open structure, and Fiat-Shamir
// compilation into a non-interactive proof.
//
// A caller implements circuit.Circuit for the statement it wants to
// prove, then calls Prove and Verify. The circuits/ subpackages provide
// ready-made circuits, including a full SHA-256 gadget family.
package zkboo
