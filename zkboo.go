package zkboo

import (
	"context"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/params"
	"github.com/zkboo-go/zkboo/proof"
	"github.com/zkboo-go/zkboo/prover"
	"github.com/zkboo-go/zkboo/verifier"
	"github.com/zkboo-go/zkboo/word"
)

// SecurityLevel re-exports params.SecurityLevel so callers need only
// import this package for the common case.
type SecurityLevel = params.SecurityLevel

const (
	Sigma40 = params.Sigma40
	Sigma80 = params.Sigma80
)

// Prove produces a non-interactive proof that the caller knows a witness
// w such that circuit.Compute(w) == publicOutput, at the given security
// level.
func Prove(ctx context.Context, c circuit.Circuit, sigma SecurityLevel, witness, publicOutput []word.Word) (*proof.Proof, error) {
	return prover.New(c, sigma).Prove(ctx, witness, publicOutput)
}

// Verify checks p against the claimed publicOutput for circuit c at the
// given security level.
func Verify(p *proof.Proof, c circuit.Circuit, sigma SecurityLevel, publicOutput []word.Word) error {
	return verifier.New(c, sigma).Verify(p, publicOutput)
}
