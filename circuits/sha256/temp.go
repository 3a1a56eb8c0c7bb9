package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// temp1 computes h + S1 + ch + k[i] + w[i] modulo 2^32, four modular
// additions chained together.
func temp1(h, s1, ch, wi, ki word.Word) word.Word {
	return add(add(add(h, s1), ch), add(ki, wi))
}

func temp1_3(
	h1, s1_1, ch1, wi1 word.Word,
	h2, s1_2, ch2, wi2 word.Word,
	h3, s1_3, chOut3 word.Word, wi3 word.Word,
	ki word.Word,
	p1, p2, p3 *party.Party,
) (word.Word, word.Word, word.Word) {
	first1, first2, first3 := gadget.AddMod3(
		gadget.Pair{X: h1, Y: s1_1}, gadget.Pair{X: h2, Y: s1_2}, gadget.Pair{X: h3, Y: s1_3},
		p1, p2, p3,
	)
	second1, second2, second3 := gadget.AddMod3(
		gadget.Pair{X: first1, Y: ch1}, gadget.Pair{X: first2, Y: ch2}, gadget.Pair{X: first3, Y: chOut3},
		p1, p2, p3,
	)
	third1, third2, third3 := gadget.AddMod3(
		gadget.Pair{X: second1, Y: wi1}, gadget.Pair{X: second2, Y: wi2}, gadget.Pair{X: second3, Y: wi3},
		p1, p2, p3,
	)
	return gadget.AddMod3Const(third1, third2, third3, ki, p1, p2, p3)
}

func temp1Verify(
	h, s1, ch, wi word.Word,
	hNext, s1Next, chNext, wiNext word.Word,
	ki word.Word,
	p, pNext *party.Party,
) (word.Word, word.Word) {
	first, firstNext := gadget.AddModVerify(
		gadget.Pair{X: h, Y: s1}, gadget.Pair{X: hNext, Y: s1Next}, p, pNext,
	)
	second, secondNext := gadget.AddModVerify(
		gadget.Pair{X: first, Y: ch}, gadget.Pair{X: firstNext, Y: chNext}, p, pNext,
	)
	third, thirdNext := gadget.AddModVerify(
		gadget.Pair{X: second, Y: wi}, gadget.Pair{X: secondNext, Y: wiNext}, p, pNext,
	)
	return gadget.AddModConstVerify(third, thirdNext, ki, p, pNext)
}

// temp2 computes S0 + maj modulo 2^32.
func temp2(s0, maj word.Word) word.Word {
	return add(s0, maj)
}

func temp2_3(s0_1, maj1, s0_2, maj2, s0_3, maj3 word.Word, p1, p2, p3 *party.Party) (word.Word, word.Word, word.Word) {
	return gadget.AddMod3(
		gadget.Pair{X: s0_1, Y: maj1}, gadget.Pair{X: s0_2, Y: maj2}, gadget.Pair{X: s0_3, Y: maj3},
		p1, p2, p3,
	)
}

func temp2Verify(s0, maj, s0Next, majNext word.Word, p, pNext *party.Party) (word.Word, word.Word) {
	return gadget.AddModVerify(
		gadget.Pair{X: s0, Y: maj}, gadget.Pair{X: s0Next, Y: majNext}, p, pNext,
	)
}

// add performs ordinary modular addition on two 32-bit words, used by the
// plain (non-MPC) compute path where no secret sharing is involved.
func add(a, b word.Word) word.Word {
	return a.(word.Word32) + b.(word.Word32)
}
