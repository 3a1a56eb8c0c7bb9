// Package testutils holds helpers shared by the engine's package tests:
// building Word32 witnesses from literals and running a full prove/verify
// round trip against a circuit.Circuit.
package testutils
