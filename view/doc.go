// Package view holds a party's view of a single 3-party simulation: its
// input share and the sequence of messages it broadcast across the
// simulation's multiplication gates (its own output share of every AND and
// modular-add gate). Views are the
// payload the prover selectively opens and the verifier replays gate by
// gate to check consistency.
package view
