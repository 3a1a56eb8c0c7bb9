// Package proof defines the wire format for a zkboo proof: a vector of
// single-repetition proofs, each carrying the opened input share, the
// opened view, both opening keys, the unopened party's commitment, and
// the repetition's claimed challenge trit.
package proof
