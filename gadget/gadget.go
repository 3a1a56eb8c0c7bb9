package gadget

import (
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// Pair holds a single party's two operand shares for a binary gate.
type Pair struct {
	X, Y word.Word
}

// Xor3 computes a free XOR gate across all three parties: no tape
// randomness is consumed and no message is broadcast, since XOR shares
// combine linearly without interaction.
func Xor3(p1, p2, p3 Pair) (word.Word, word.Word, word.Word) {
	return p1.X.Xor(p1.Y), p2.X.Xor(p2.Y), p3.X.Xor(p3.Y)
}

// Xor2 is the two-party verifier-side counterpart of Xor3, used when
// re-simulating only the two opened parties of a repetition.
func Xor2(p, pNext Pair) (word.Word, word.Word) {
	return p.X.Xor(p.Y), pNext.X.Xor(pNext.Y)
}

// And3 computes a single AND gate across all three parties, consuming one
// tape word of randomness per party and broadcasting each party's output
// share to its own view.
func And3(p1, p2, p3 Pair, party1, party2, party3 *party.Party) (word.Word, word.Word, word.Word) {
	r1 := party1.ReadTape()
	r2 := party2.ReadTape()
	r3 := party3.ReadTape()

	o1 := p1.X.And(p1.Y).Xor(p1.X.And(p2.Y)).Xor(p1.Y.And(p2.X)).Xor(r1.Xor(r2))
	o2 := p2.X.And(p2.Y).Xor(p2.X.And(p3.Y)).Xor(p2.Y.And(p3.X)).Xor(r2.Xor(r3))
	o3 := p3.X.And(p3.Y).Xor(p3.X.And(p1.Y)).Xor(p3.Y.And(p1.X)).Xor(r3.Xor(r1))

	party1.SendMsg(o1)
	party2.SendMsg(o2)
	party3.SendMsg(o3)

	return o1, o2, o3
}

// AndVerify re-simulates a single AND gate for two of the three parties:
// p (role i0) computes and broadcasts its output the same way the prover
// did; p_next (role i1) supplies its output by replaying the next message
// from its opened view rather than recomputing it. Consistency of that
// replayed message with the rest of the transcript is checked later via
// commitment binding, not here.
func AndVerify(in, inNext Pair, p, pNext *party.Party) (word.Word, word.Word) {
	ri := p.ReadTape()
	riNext := pNext.ReadTape()

	out := in.X.And(in.Y).Xor(in.X.And(inNext.Y)).Xor(in.Y.And(inNext.X)).Xor(ri.Xor(riNext))
	p.SendMsg(out)

	return out, pNext.ReadView()
}

// bitAnd is the single-bit AND share formula the ripple-carry adder's
// carry chain is built from.
func bitAnd(a1, b1, a2, b2, r1, r2 word.Bit) word.Bit {
	return a1.And(b1).Xor(a1.And(b2)).Xor(b1.And(a2)).Xor(r1.Xor(r2))
}

// AddMod3 computes a1+b1, a2+b2, a3+b3 modulo 2^width for all three
// parties with a bit-serial ripple-carry adder. The full carry word is
// consumed as a single tape word per party and broadcast as a single
// message, so an add costs one multiplication gate in the engine's
// accounting regardless of word width.
func AddMod3(p1, p2, p3 Pair, party1, party2, party3 *party.Party) (word.Word, word.Word, word.Word) {
	width := p1.X.Width()

	r1 := party1.ReadTape()
	r2 := party2.ReadTape()
	r3 := party3.ReadTape()

	carry1, _ := word.Zero(width)
	carry2, _ := word.Zero(width)
	carry3, _ := word.Zero(width)

	for i := 0; i < width-1; i++ {
		r1i, r2i, r3i := r1.Bit(i), r2.Bit(i), r3.Bit(i)

		a1, b1 := p1.X.Xor(carry1).Bit(i), p1.Y.Xor(carry1).Bit(i)
		a2, b2 := p2.X.Xor(carry2).Bit(i), p2.Y.Xor(carry2).Bit(i)
		a3, b3 := p3.X.Xor(carry3).Bit(i), p3.Y.Xor(carry3).Bit(i)

		c1 := bitAnd(a1, b1, a2, b2, r1i, r2i).Xor(carry1.Bit(i))
		c2 := bitAnd(a2, b2, a3, b3, r2i, r3i).Xor(carry2.Bit(i))
		c3 := bitAnd(a3, b3, a1, b1, r3i, r1i).Xor(carry3.Bit(i))

		carry1 = carry1.SetBit(i+1, c1)
		carry2 = carry2.SetBit(i+1, c2)
		carry3 = carry3.SetBit(i+1, c3)
	}

	party1.SendMsg(carry1)
	party2.SendMsg(carry2)
	party3.SendMsg(carry3)

	o1 := p1.X.Xor(p1.Y).Xor(carry1)
	o2 := p2.X.Xor(p2.Y).Xor(carry2)
	o3 := p3.X.Xor(p3.Y).Xor(carry3)

	return o1, o2, o3
}

// AddModVerify re-simulates a ripple-carry add for two of the three
// parties, mirroring AndVerify: p recomputes and broadcasts its carry
// word, p_next replays its carry word from its opened view.
func AddModVerify(in, inNext Pair, p, pNext *party.Party) (word.Word, word.Word) {
	width := in.X.Width()

	ri := p.ReadTape()
	riNext := pNext.ReadTape()

	carry, _ := word.Zero(width)
	carryNext := pNext.ReadView()

	for i := 0; i < width-1; i++ {
		rib, riNextb := ri.Bit(i), riNext.Bit(i)

		a, b := in.X.Xor(carry).Bit(i), in.Y.Xor(carry).Bit(i)
		aNext, bNext := inNext.X.Xor(carryNext).Bit(i), inNext.Y.Xor(carryNext).Bit(i)

		c := bitAnd(a, b, aNext, bNext, rib, riNextb).Xor(carry.Bit(i))
		carry = carry.SetBit(i+1, c)
	}

	p.SendMsg(carry)

	o := in.X.Xor(in.Y).Xor(carry)
	oNext := inNext.X.Xor(inNext.Y).Xor(carryNext)

	return o, oNext
}

// AddMod3Const adds the same public constant k to all three parties'
// shares of x. Since k is public, every party holds it unchanged as its
// "share" of k (k ⊕ k ⊕ k = k), so this reduces to AddMod3 with k as the
// second operand for all three parties.
func AddMod3Const(x1, x2, x3, k word.Word, party1, party2, party3 *party.Party) (word.Word, word.Word, word.Word) {
	return AddMod3(Pair{X: x1, Y: k}, Pair{X: x2, Y: k}, Pair{X: x3, Y: k}, party1, party2, party3)
}

// AddModConstVerify is the verify dual of AddMod3Const.
func AddModConstVerify(x, xNext, k word.Word, p, pNext *party.Party) (word.Word, word.Word) {
	return AddModVerify(Pair{X: x, Y: k}, Pair{X: xNext, Y: k}, p, pNext)
}
