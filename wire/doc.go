// Package wire implements the length-prefixed little-endian binary
// encoding shared by the proof wire format and the Fiat-Shamir public
// input encoding: every variable-length field is prefixed with its byte
// length as a little-endian uint64.
package wire
