package boolcircuit

import (
	"fmt"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// Circuit computes (x1 xor x2) and (x3 xor x4) and x5.
type Circuit struct{}

var _ circuit.Circuit = Circuit{}

func (Circuit) Compute(input []word.Word) []word.Word {
	if len(input) != 5 {
		panic(fmt.Sprintf("boolcircuit: expected 5 inputs, got %d", len(input)))
	}
	a := input[0].Xor(input[1])
	b := input[2].Xor(input[3])
	return []word.Word{a.And(b).And(input[4])}
}

func (Circuit) Compute23Decomposition(p1, p2, p3 *party.Party) circuit.TwoThreeDecOutput {
	x1, x2, x3 := p1.View.Input, p2.View.Input, p3.View.Input

	a1, a2, a3 := gadget.Xor3(
		gadget.Pair{X: x1[0], Y: x1[1]},
		gadget.Pair{X: x2[0], Y: x2[1]},
		gadget.Pair{X: x3[0], Y: x3[1]},
	)
	b1, b2, b3 := gadget.Xor3(
		gadget.Pair{X: x1[2], Y: x1[3]},
		gadget.Pair{X: x2[2], Y: x2[3]},
		gadget.Pair{X: x3[2], Y: x3[3]},
	)

	ab1, ab2, ab3 := gadget.And3(
		gadget.Pair{X: a1, Y: b1},
		gadget.Pair{X: a2, Y: b2},
		gadget.Pair{X: a3, Y: b3},
		p1, p2, p3,
	)

	o1, o2, o3 := gadget.And3(
		gadget.Pair{X: ab1, Y: x1[4]},
		gadget.Pair{X: ab2, Y: x2[4]},
		gadget.Pair{X: ab3, Y: x3[4]},
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

	ap, an := gadget.Xor2(
		gadget.Pair{X: xp[0], Y: xp[1]},
		gadget.Pair{X: xn[0], Y: xn[1]},
	)
	bp, bn := gadget.Xor2(
		gadget.Pair{X: xp[2], Y: xp[3]},
		gadget.Pair{X: xn[2], Y: xn[3]},
	)

	abp, abn := gadget.AndVerify(gadget.Pair{X: ap, Y: bp}, gadget.Pair{X: an, Y: bn}, p, pNext)
	op, on := gadget.AndVerify(gadget.Pair{X: abp, Y: xp[4]}, gadget.Pair{X: abn, Y: xn[4]}, p, pNext)

	return []word.Word{op}, []word.Word{on}, nil
}

func (Circuit) PartyInputLen() int  { return 5 }
func (Circuit) PartyOutputLen() int { return 1 }
func (Circuit) NumOfMulGates() int  { return 2 }
func (Circuit) WordWidth() int      { return 32 }
