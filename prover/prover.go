package prover

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/commitment"
	"github.com/zkboo-go/zkboo/fiatshamir"
	"github.com/zkboo-go/zkboo/log"
	"github.com/zkboo-go/zkboo/params"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/proof"
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/wire"
	"github.com/zkboo-go/zkboo/word"
)

// defaultDomainSeed is the domain separation tag absorbed before any
// transcript data. Callers proving statements about distinct circuits in
// the same process should set a circuit-specific seed in Prover.DomainSeed
// so that a transcript valid for one circuit can never be replayed as
// valid for another.
var defaultDomainSeed = []byte{0x00}

// Prover runs the zkboo protocol for a fixed circuit and security level.
type Prover struct {
	Circuit    circuit.Circuit
	Sigma      params.SecurityLevel
	DomainSeed []byte
}

// New builds a Prover with the default domain seed.
func New(c circuit.Circuit, sigma params.SecurityLevel) *Prover {
	return &Prover{Circuit: c, Sigma: sigma, DomainSeed: defaultDomainSeed}
}

// repetitionResult is the full output of one repetition's simulation,
// before the Fiat-Shamir challenge selects what to open.
type repetitionResult struct {
	keys        [3]tape.Key
	shares      [3][]word.Word
	messages    [3][]word.Word
	outputs     [3][]word.Word
	commitments [3]commitment.Commitment
}

// Prove produces a non-interactive proof that the prover knows a witness
// satisfying Circuit.Compute(witness) == publicOutput. publicOutput is
// supplied by the caller (normally circuit.Compute(witness)) rather than
// recomputed here, so that proving and the statement being proved are
// decoupled.
func (p *Prover) Prove(ctx context.Context, witness, publicOutput []word.Word) (*proof.Proof, error) {
	r := params.Repetitions(p.Sigma)
	width := p.Circuit.WordWidth()

	log.Logger().Debug().Int("repetitions", r).Int("word_width", width).Int("mul_gates", p.Circuit.NumOfMulGates()).
		Msg("prover: starting repetitions")

	results := make([]repetitionResult, r)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for rep := 0; rep < r; rep++ {
		rep := rep
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.runRepetition(witness, width)
			if err != nil {
				return fmt.Errorf("prover: repetition %d: %w", rep, err)
			}
			results[rep] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	allOutputs := make([][]word.Word, 0, 3*r)
	allCommitments := make([]commitment.Commitment, 0, 3*r)
	for rep := 0; rep < r; rep++ {
		for partyIdx := 0; partyIdx < 3; partyIdx++ {
			allOutputs = append(allOutputs, results[rep].outputs[partyIdx])
			allCommitments = append(allCommitments, results[rep].commitments[partyIdx])
		}
	}

	domainSeed := p.DomainSeed
	if domainSeed == nil {
		domainSeed = defaultDomainSeed
	}
	oracle := fiatshamir.New(domainSeed)
	oracle.DigestPublicData(fiatshamir.EncodePublicInput(allOutputs, publicOutput, commitment.HashLen, int(p.Sigma)))
	oracle.DigestProverMessage(fiatshamir.EncodeCommitments(allCommitments))
	trits := oracle.SampleTrits(r)

	reps := make([]proof.RepetitionProof, r)
	for rep := 0; rep < r; rep++ {
		t := trits[rep]
		i0, i1, i2 := int(t), int(t+1)%3, int(t+2)%3
		res := results[rep]

		reps[rep] = proof.RepetitionProof{
			InputShare:       res.shares[i0],
			ViewNextInput:    res.shares[i1],
			ViewNextMessages: res.messages[i1],
			KeyI0:            res.keys[i0],
			KeyI1:            res.keys[i1],
			CommitmentI2:     res.commitments[i2],
			ClaimedTrit:      t,
		}
	}

	log.Logger().Debug().Int("repetitions", r).Msg("prover: proof assembled")

	return &proof.Proof{Repetitions: reps}, nil
}

// runRepetition draws fresh keys and shares, runs the circuit's
// three-party decomposition, and commits to each party's view. The three
// parties' gates are strictly sequential within a repetition (an AND gate
// for party k reads party k+1's masked input), so everything inside this
// function runs on one goroutine; only the repetitions themselves are
// parallelized by the caller.
func (p *Prover) runRepetition(witness []word.Word, width int) (repetitionResult, error) {
	var res repetitionResult

	for i := range res.keys {
		if err := fillRandomKey(&res.keys[i]); err != nil {
			return res, err
		}
	}

	share1, err := randomWords(len(witness), width)
	if err != nil {
		return res, err
	}
	share2, err := randomWords(len(witness), width)
	if err != nil {
		return res, err
	}
	share3 := make([]word.Word, len(witness))
	for i := range witness {
		share3[i] = witness[i].Xor(share1[i]).Xor(share2[i])
	}
	res.shares = [3][]word.Word{share1, share2, share3}

	tapeLen := p.Circuit.NumOfMulGates()
	parties := make([]*party.Party, 3)
	for i := 0; i < 3; i++ {
		pt, err := party.New(res.shares[i], res.keys[i], tapeLen, width)
		if err != nil {
			return res, fmt.Errorf("constructing party %d: %w", i, err)
		}
		parties[i] = pt
	}

	decOut := p.Circuit.Compute23Decomposition(parties[0], parties[1], parties[2])
	res.outputs = [3][]word.Word{decOut.Out1, decOut.Out2, decOut.Out3}

	for i := 0; i < 3; i++ {
		res.messages[i] = parties[i].View.Messages
		msg := append(wire.WordsToBytes(res.shares[i]), wire.WordsToBytes(res.messages[i])...)
		c, err := commitment.Commit(res.keys[i][:], msg)
		if err != nil {
			return res, fmt.Errorf("committing party %d: %w", i, err)
		}
		res.commitments[i] = c
	}

	return res, nil
}

func randomWords(n, width int) ([]word.Word, error) {
	words := make([]word.Word, n)
	for i := range words {
		w, err := word.Random(width)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

// fillRandomKey draws a fresh tape seed from the OS CS-PRNG. Keys are
// single-use, so no derivation scheme is needed beyond raw randomness.
func fillRandomKey(k *tape.Key) error {
	_, err := io.ReadFull(rand.Reader, k[:])
	return err
}
