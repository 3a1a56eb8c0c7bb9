// Package addmod implements the circuit C(x,y) = (x+y) mod 2^32, the
// engine's minimal worked example of an arithmetic (as opposed to purely
// boolean) gate.
package addmod
