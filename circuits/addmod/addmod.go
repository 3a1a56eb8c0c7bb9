package addmod

import (
	"fmt"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// Circuit computes x+y mod 2^32.
type Circuit struct{}

var _ circuit.Circuit = Circuit{}

func (Circuit) Compute(input []word.Word) []word.Word {
	if len(input) != 2 {
		panic(fmt.Sprintf("addmod: expected 2 inputs, got %d", len(input)))
	}
	x, y := input[0].(word.Word32), input[1].(word.Word32)
	return []word.Word{x + y}
}

func (Circuit) Compute23Decomposition(p1, p2, p3 *party.Party) circuit.TwoThreeDecOutput {
	x1, x2, x3 := p1.View.Input, p2.View.Input, p3.View.Input

	o1, o2, o3 := gadget.AddMod3(
		gadget.Pair{X: x1[0], Y: x1[1]},
		gadget.Pair{X: x2[0], Y: x2[1]},
		gadget.Pair{X: x3[0], Y: x3[1]},
		p1, p2, p3,
	)

	return circuit.TwoThreeDecOutput{
		Out1: []word.Word{o1},
		Out2: []word.Word{o2},
		Out3: []word.Word{o3},
	}
}

func (Circuit) SimulateTwoParties(p, pNext *party.Party) ([]word.Word, []word.Word, error) {
	xp, xn := p.View.Input, pNext.View.Input

	op, on := gadget.AddModVerify(
		gadget.Pair{X: xp[0], Y: xp[1]},
		gadget.Pair{X: xn[0], Y: xn[1]},
		p, pNext,
	)

	return []word.Word{op}, []word.Word{on}, nil
}

func (Circuit) PartyInputLen() int  { return 2 }
func (Circuit) PartyOutputLen() int { return 1 }
func (Circuit) NumOfMulGates() int  { return 1 }
func (Circuit) WordWidth() int      { return 32 }
