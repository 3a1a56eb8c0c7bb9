package circuit

import (
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// TwoThreeDecOutput is the three parties' output shares from a single
// repetition's three-party simulation.
type TwoThreeDecOutput struct {
	Out1, Out2, Out3 []word.Word
}

// Circuit is implemented once per statement a prover wants to support. The
// engine never inspects circuit internals beyond these three operations and
// four size accessors.
type Circuit interface {
	// Compute evaluates the circuit in the clear, for computing or
	// checking the public output.
	Compute(input []word.Word) []word.Word

	// Compute23Decomposition runs the circuit's gates across all three
	// simulated parties, threading gadget calls through p1, p2, p3. Each
	// party's View must already hold its input share before this is
	// called.
	Compute23Decomposition(p1, p2, p3 *party.Party) TwoThreeDecOutput

	// SimulateTwoParties re-runs the circuit's gates for two of the three
	// parties: p computes and broadcasts as the prover did; pNext replays
	// its messages from an already-populated View instead of
	// recomputing them.
	SimulateTwoParties(p, pNext *party.Party) ([]word.Word, []word.Word, error)

	// PartyInputLen is the number of words each party's input share
	// holds.
	PartyInputLen() int
	// PartyOutputLen is the number of words each party's output share
	// holds.
	PartyOutputLen() int
	// NumOfMulGates is the number of tape words each party consumes per
	// repetition; it sizes every party's tape.
	NumOfMulGates() int
	// WordWidth is the bit width of the words this circuit operates
	// over, used to size tapes and parse shares.
	WordWidth() int
}
