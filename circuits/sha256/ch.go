package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// ch computes (e and f) xor ((not e) and g), rewritten as
// (e and (f xor g)) xor g to cost a single AND gate.
func ch(e, f, g word.Word) word.Word {
	return e.And(f).Xor(e.Not().And(g))
}

func ch3(e1, f1, g1, e2, f2, g2, e3, f3, g3 word.Word, p1, p2, p3 *party.Party) (word.Word, word.Word, word.Word) {
	fg1 := f1.Xor(g1)
	fg2 := f2.Xor(g2)
	fg3 := f3.Xor(g3)

	lhs1, lhs2, lhs3 := gadget.And3(
		gadget.Pair{X: e1, Y: fg1},
		gadget.Pair{X: e2, Y: fg2},
		gadget.Pair{X: e3, Y: fg3},
		p1, p2, p3,
	)

	return lhs1.Xor(g1), lhs2.Xor(g2), lhs3.Xor(g3)
}

func chVerify(e, f, g, eNext, fNext, gNext word.Word, p, pNext *party.Party) (word.Word, word.Word) {
	fg := f.Xor(g)
	fgNext := fNext.Xor(gNext)

	lhs, lhsNext := gadget.AndVerify(
		gadget.Pair{X: e, Y: fg},
		gadget.Pair{X: eNext, Y: fgNext},
		p, pNext,
	)

	return lhs.Xor(g), lhsNext.Xor(gNext)
}
