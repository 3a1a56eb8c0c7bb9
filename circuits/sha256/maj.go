package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// maj computes (a and b) xor (a and c) xor (b and c), rewritten as
// ((a xor b) and (a xor c)) xor a to cost a single AND gate.
func maj(a, b, c word.Word) word.Word {
	return a.And(b).Xor(a.And(c)).Xor(b.And(c))
}

func maj3(a1, b1, c1, a2, b2, c2, a3, b3, c3 word.Word, p1, p2, p3 *party.Party) (word.Word, word.Word, word.Word) {
	aXorB1, aXorB2, aXorB3 := a1.Xor(b1), a2.Xor(b2), a3.Xor(b3)
	aXorC1, aXorC2, aXorC3 := a1.Xor(c1), a2.Xor(c2), a3.Xor(c3)

	lhs1, lhs2, lhs3 := gadget.And3(
		gadget.Pair{X: aXorB1, Y: aXorC1},
		gadget.Pair{X: aXorB2, Y: aXorC2},
		gadget.Pair{X: aXorB3, Y: aXorC3},
		p1, p2, p3,
	)

	return lhs1.Xor(a1), lhs2.Xor(a2), lhs3.Xor(a3)
}

func majVerify(a, b, c, aNext, bNext, cNext word.Word, p, pNext *party.Party) (word.Word, word.Word) {
	aXorB, aXorBNext := a.Xor(b), aNext.Xor(bNext)
	aXorC, aXorCNext := a.Xor(c), aNext.Xor(cNext)

	lhs, lhsNext := gadget.AndVerify(
		gadget.Pair{X: aXorB, Y: aXorC},
		gadget.Pair{X: aXorBNext, Y: aXorCNext},
		p, pNext,
	)

	return lhs.Xor(a), lhsNext.Xor(aNext)
}
