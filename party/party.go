package party

import (
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/view"
	"github.com/zkboo-go/zkboo/word"
)

// Party is one of the three simulated parties in an MPC-in-the-head
// repetition: its Tape supplies multiplication-gate randomness, its View
// records its input share and the messages it exchanges during
// simulation.
type Party struct {
	Tape *tape.Tape
	View *view.View
}

// New seeds a fresh Party from an input share and a tape key.
func New(share []word.Word, key tape.Key, tapeLen, wordWidth int) (*Party, error) {
	t, err := tape.FromKey(key, tapeLen, wordWidth)
	if err != nil {
		return nil, err
	}
	return &Party{Tape: t, View: view.New(share)}, nil
}

// FromTapeAndView builds a Party directly from an already-constructed tape
// and view, used by the verifier when reconstructing a party from an
// opened proof transcript instead of from a fresh random seed.
func FromTapeAndView(t *tape.Tape, v *view.View) *Party {
	return &Party{Tape: t, View: v}
}

// ReadTape draws the next multiplication-gate random word from the
// party's tape.
func (p *Party) ReadTape() word.Word { return p.Tape.ReadNext() }

// ReadView returns the next message in the party's view, agnostic to
// whether the view was populated by simulation (prover side) or decoded
// from an opened proof (verifier side).
func (p *Party) ReadView() word.Word { return p.View.ReadNext() }

// SendMsg appends a message to the party's view during simulation.
func (p *Party) SendMsg(msg word.Word) { p.View.SendMsg(msg) }
