// Package boolcircuit implements the toy circuit
// C(x1,x2,x3,x4,x5) = (x1 xor x2) and (x3 xor x4) and x5
// over 32-bit words, used as the engine's minimal worked example.
package boolcircuit
