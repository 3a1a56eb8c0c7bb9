package view

import (
	"fmt"

	"github.com/zkboo-go/zkboo/word"
)

// View is a single party's input share plus the messages it broadcast
// during one 3-party circuit simulation. Messages are appended during
// simulation (SendMsg) and replayed in the same order during verification
// (ReadNext); the offset tracks the verifier's read cursor independently of
// the prover's write cursor, since the two never run concurrently over the
// same View value.
type View struct {
	Input    []word.Word
	Messages []word.Word
	offset   int
}

// New creates a View seeded with a party's input share.
func New(input []word.Word) *View {
	return &View{Input: input}
}

// SendMsg appends a message this party broadcasts during simulation.
func (v *View) SendMsg(msg word.Word) {
	v.Messages = append(v.Messages, msg)
}

// ReadNext returns the next unread message and advances the read cursor. It
// panics if there is no next message, since a well-formed re-simulation
// never reads more messages than the original simulation wrote.
func (v *View) ReadNext() word.Word {
	if v.offset >= len(v.Messages) {
		panic(fmt.Sprintf("view: read past end of view (len=%d)", len(v.Messages)))
	}
	msg := v.Messages[v.offset]
	v.offset++
	return msg
}

// Reset rewinds the read cursor to the beginning, for re-reading a View
// across multiple verification passes.
func (v *View) Reset() { v.offset = 0 }
