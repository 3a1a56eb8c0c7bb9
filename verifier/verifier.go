package verifier

import (
	"errors"
	"fmt"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/commitment"
	"github.com/zkboo-go/zkboo/fiatshamir"
	"github.com/zkboo-go/zkboo/log"
	"github.com/zkboo-go/zkboo/params"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/proof"
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/view"
	"github.com/zkboo-go/zkboo/wire"
	"github.com/zkboo-go/zkboo/word"
)

// Sentinel errors returned by Verify. Callers should use errors.Is rather
// than matching message text.
var (
	// ErrVerificationFailed covers any structural check that fails before
	// the Fiat-Shamir comparison is reached: wrong repetition count, an
	// out-of-range claimed trit, or a view whose length disagrees with
	// what the circuit declares.
	ErrVerificationFailed = errors.New("verifier: verification failed")

	// ErrOutputReconstructionFailed is returned when a repetition's
	// re-simulated output shares do not have the public output's length,
	// so the third party's share cannot be reconstructed from them.
	ErrOutputReconstructionFailed = errors.New("verifier: output reconstruction failed")

	// ErrFiatShamirMismatch is returned when the re-derived trits do not
	// match the proof's claimed trits.
	ErrFiatShamirMismatch = errors.New("verifier: fiat-shamir mismatch")
)

var defaultDomainSeed = []byte{0x00}

// Verifier checks zkboo proofs for a fixed circuit and security level.
type Verifier struct {
	Circuit    circuit.Circuit
	Sigma      params.SecurityLevel
	DomainSeed []byte
}

// New builds a Verifier with the default domain seed.
func New(c circuit.Circuit, sigma params.SecurityLevel) *Verifier {
	return &Verifier{Circuit: c, Sigma: sigma, DomainSeed: defaultDomainSeed}
}

// Verify checks p against the claimed publicOutput.
func (v *Verifier) Verify(p *proof.Proof, publicOutput []word.Word) error {
	r := params.Repetitions(v.Sigma)
	if len(p.Repetitions) != r {
		return fmt.Errorf("%w: proof has %d repetitions, want %d", ErrVerificationFailed, len(p.Repetitions), r)
	}

	allOutputs := make([][]word.Word, 3*r)
	allCommitments := make([]commitment.Commitment, 3*r)

	for rep, rp := range p.Repetitions {
		if rp.ClaimedTrit > 2 {
			return fmt.Errorf("%w: repetition %d has out-of-range trit %d", ErrVerificationFailed, rep, rp.ClaimedTrit)
		}
		if len(rp.InputShare) != v.Circuit.PartyInputLen() || len(rp.ViewNextInput) != v.Circuit.PartyInputLen() {
			return fmt.Errorf("%w: repetition %d has wrong input share length", ErrVerificationFailed, rep)
		}

		i0, i1, i2 := int(rp.ClaimedTrit), int(rp.ClaimedTrit+1)%3, int(rp.ClaimedTrit+2)%3

		width := v.Circuit.WordWidth()
		tapeLen := v.Circuit.NumOfMulGates()

		// ViewNextMessages is replayed message-by-message by every gadget
		// SimulateTwoParties calls (view.ReadNext panics once the replay
		// cursor passes the end of Messages), so its length must match the
		// circuit's declared gate count before any replay happens.
		if len(rp.ViewNextMessages) != tapeLen {
			return fmt.Errorf("%w: repetition %d has wrong view length", ErrVerificationFailed, rep)
		}

		pTape, err := tape.FromKey(rp.KeyI0, tapeLen, width)
		if err != nil {
			return fmt.Errorf("%w: repetition %d: %v", ErrVerificationFailed, rep, err)
		}
		pView := view.New(rp.InputShare)
		p0 := party.FromTapeAndView(pTape, pView)

		pNextTape, err := tape.FromKey(rp.KeyI1, tapeLen, width)
		if err != nil {
			return fmt.Errorf("%w: repetition %d: %v", ErrVerificationFailed, rep, err)
		}
		pNextView := view.New(rp.ViewNextInput)
		pNextView.Messages = rp.ViewNextMessages
		p1 := party.FromTapeAndView(pNextTape, pNextView)

		outI0, outI1, err := v.Circuit.SimulateTwoParties(p0, p1)
		if err != nil {
			return fmt.Errorf("%w: repetition %d: %v", ErrVerificationFailed, rep, err)
		}
		if len(outI0) != len(publicOutput) || len(outI1) != len(publicOutput) {
			return fmt.Errorf("%w: repetition %d has wrong output share length", ErrOutputReconstructionFailed, rep)
		}

		outI2 := make([]word.Word, len(publicOutput))
		for i := range outI2 {
			outI2[i] = outI0[i].Xor(outI1[i]).Xor(publicOutput[i])
		}

		msg0 := append(wire.WordsToBytes(rp.InputShare), wire.WordsToBytes(p0.View.Messages)...)
		cmI0, err := commitment.Commit(rp.KeyI0[:], msg0)
		if err != nil {
			return fmt.Errorf("%w: repetition %d: %v", ErrVerificationFailed, rep, err)
		}
		msg1 := append(wire.WordsToBytes(rp.ViewNextInput), wire.WordsToBytes(rp.ViewNextMessages)...)
		cmI1, err := commitment.Commit(rp.KeyI1[:], msg1)
		if err != nil {
			return fmt.Errorf("%w: repetition %d: %v", ErrVerificationFailed, rep, err)
		}
		cmI2 := rp.CommitmentI2

		outputs := [3][]word.Word{}
		outputs[i0], outputs[i1], outputs[i2] = outI0, outI1, outI2
		commitments := [3]commitment.Commitment{}
		commitments[i0], commitments[i1], commitments[i2] = cmI0, cmI1, cmI2

		for partyIdx := 0; partyIdx < 3; partyIdx++ {
			allOutputs[3*rep+partyIdx] = outputs[partyIdx]
			allCommitments[3*rep+partyIdx] = commitments[partyIdx]
		}
	}

	domainSeed := v.DomainSeed
	if domainSeed == nil {
		domainSeed = defaultDomainSeed
	}
	oracle := fiatshamir.New(domainSeed)
	oracle.DigestPublicData(fiatshamir.EncodePublicInput(allOutputs, publicOutput, commitment.HashLen, int(v.Sigma)))
	oracle.DigestProverMessage(fiatshamir.EncodeCommitments(allCommitments))
	trits := oracle.SampleTrits(r)

	for rep, rp := range p.Repetitions {
		if trits[rep] != rp.ClaimedTrit {
			log.Logger().Warn().Int("repetition", rep).Msg("verifier: fiat-shamir mismatch")
			return fmt.Errorf("%w: repetition %d", ErrFiatShamirMismatch, rep)
		}
	}

	log.Logger().Debug().Int("repetitions", r).Msg("verifier: proof accepted")

	return nil
}
