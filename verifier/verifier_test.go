package verifier_test

import (
	"context"
	"errors"
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

func validProof(t *testing.T) (boolcircuit.Circuit, []word.Word, *prover.Prover) {
	t.Helper()
	c := boolcircuit.Circuit{}
	witness := w(5, 4, 7, 2, 9)
	publicOutput := c.Compute(witness)
	return c, publicOutput, prover.New(c, params.Sigma40)
}

func TestVerifyRejectsWrongRepetitionCount(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions = p.Repetitions[:len(p.Repetitions)-1]

	v := verifier.New(c, params.Sigma40)
	if err := v.Verify(p, publicOutput); !errors.Is(err, verifier.ErrVerificationFailed) {
		t.Fatalf("Verify = %v, want ErrVerificationFailed", err)
	}
}

func TestVerifyRejectsFlippedInputShareBit(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions[0].InputShare[0] = p.Repetitions[0].InputShare[0].Xor(word.Word32(1))

	v := verifier.New(c, params.Sigma40)
	if err := v.Verify(p, publicOutput); err == nil {
		t.Fatal("expected verification failure against a tampered input share")
	}
}

func TestVerifyRejectsFlippedMessage(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions[0].ViewNextMessages[0] = p.Repetitions[0].ViewNextMessages[0].Xor(word.Word32(1))

	v := verifier.New(c, params.Sigma40)
	if err := v.Verify(p, publicOutput); err == nil {
		t.Fatal("expected verification failure against a tampered message")
	}
}

func TestVerifyRejectsPermutedRepetitions(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions[0], p.Repetitions[1] = p.Repetitions[1], p.Repetitions[0]

	v := verifier.New(c, params.Sigma40)
	if err := v.Verify(p, publicOutput); !errors.Is(err, verifier.ErrFiatShamirMismatch) {
		t.Fatalf("Verify = %v, want ErrFiatShamirMismatch", err)
	}
}

func TestVerifyRejectsTruncatedViewMessages(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions[0].ViewNextMessages = p.Repetitions[0].ViewNextMessages[:0]

	v := verifier.New(c, params.Sigma40)
	err = v.Verify(p, publicOutput)
	if err == nil {
		t.Fatal("expected verification failure against a truncated view")
	}
	if !errors.Is(err, verifier.ErrVerificationFailed) {
		t.Fatalf("Verify = %v, want ErrVerificationFailed", err)
	}
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	c, publicOutput, pr := validProof(t)
	p, err := pr.Prove(context.Background(), w(5, 4, 7, 2, 9), publicOutput)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p.Repetitions[0].CommitmentI2[0] ^= 0xFF

	v := verifier.New(c, params.Sigma40)
	if err := v.Verify(p, publicOutput); !errors.Is(err, verifier.ErrFiatShamirMismatch) {
		t.Fatalf("Verify = %v, want ErrFiatShamirMismatch", err)
	}
}
