// Package gadget implements the MPC gate primitives every circuit
// decomposes into: XOR (free), AND (one tape word of randomness per
// party, one broadcast message), and ripple-carry modular addition (one
// tape word and one broadcast message per party for the whole adder,
// since the carry chain is broadcast as a single word). Each primitive has
// a "verify" dual used by the verifier to re-simulate two of the three
// parties.
package gadget
