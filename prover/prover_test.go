package prover_test

import (
	"context"
	"testing"

	"github.com/zkboo-go/zkboo/circuits/boolcircuit"
	"github.com/zkboo-go/zkboo/params"
	"github.com/zkboo-go/zkboo/prover"
	"github.com/zkboo-go/zkboo/verifier"
	"github.com/zkboo-go/zkboo/word"
)

func w(vals ...uint32) []word.Word {
	out := make([]word.Word, len(vals))
	for i, v := range vals {
		out[i] = word.Word32(v)
	}
	return out
}

func TestProveProducesOneRepetitionPerRequiredCount(t *testing.T) {
	c := boolcircuit.Circuit{}
	witness := w(5, 4, 7, 2, 9)
	publicOutput := c.Compute(witness)

	pr := prover.New(c, params.Sigma40)
	proof, err := pr.Prove(context.Background(), witness, publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	want := params.Repetitions(params.Sigma40)
	if len(proof.Repetitions) != want {
		t.Fatalf("got %d repetitions, want %d", len(proof.Repetitions), want)
	}
	for i, rp := range proof.Repetitions {
		if rp.ClaimedTrit > 2 {
			t.Fatalf("repetition %d has out-of-range trit %d", i, rp.ClaimedTrit)
		}
		if len(rp.InputShare) != c.PartyInputLen() {
			t.Fatalf("repetition %d has input share length %d, want %d", i, len(rp.InputShare), c.PartyInputLen())
		}
	}
}

func TestProveThenVerifyAcrossSecurityLevels(t *testing.T) {
	c := boolcircuit.Circuit{}
	witness := w(5, 4, 7, 2, 9)
	publicOutput := c.Compute(witness)

	for _, sigma := range []params.SecurityLevel{params.Sigma40, params.Sigma80} {
		pr := prover.New(c, sigma)
		proof, err := pr.Prove(context.Background(), witness, publicOutput)
		if err != nil {
			t.Fatalf("sigma %d: Prove: %v", sigma, err)
		}
		v := verifier.New(c, sigma)
		if err := v.Verify(proof, publicOutput); err != nil {
			t.Fatalf("sigma %d: Verify: %v", sigma, err)
		}
	}
}

func TestProveRespectsContextCancellation(t *testing.T) {
	c := boolcircuit.Circuit{}
	witness := w(5, 4, 7, 2, 9)
	publicOutput := c.Compute(witness)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr := prover.New(c, params.Sigma80)
	_, err := pr.Prove(ctx, witness, publicOutput)
	if err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}
