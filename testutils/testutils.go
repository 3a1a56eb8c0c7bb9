package testutils

import (
	"context"
	"testing"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/params"
	"github.com/zkboo-go/zkboo/prover"
	"github.com/zkboo-go/zkboo/verifier"
	"github.com/zkboo-go/zkboo/word"
)

// Words32 builds a []word.Word of Word32 values from plain uint32 literals,
// for circuits operating over 32-bit words.
func Words32(vals ...uint32) []word.Word {
	out := make([]word.Word, len(vals))
	for i, v := range vals {
		out[i] = word.Word32(v)
	}
	return out
}

// AssertRoundTrip proves c.Compute(witness) against publicOutput at the
// given security level and checks the resulting proof verifies.
func AssertRoundTrip(t *testing.T, c circuit.Circuit, sigma params.SecurityLevel, witness, publicOutput []word.Word) {
	t.Helper()

	p, err := prover.New(c, sigma).Prove(context.Background(), witness, publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := verifier.New(c, sigma).Verify(p, publicOutput); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}
