// Package party pairs a Tape (the party's private multiplication-gate
// randomness) with a View (its input share and sent/received messages)
// into the single object a circuit simulation operates on.
package party
