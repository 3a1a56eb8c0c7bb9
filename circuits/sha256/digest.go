package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// digest adds the post-round working variables to the chaining value,
// producing the next chaining value (or, after the last block, the final
// digest).
func digest(chain [8]word.Word, v workingVars) [8]word.Word {
	out := [8]word.Word{v.a, v.b, v.c, v.d, v.e, v.f, v.g, v.h}
	for i := range out {
		out[i] = add(chain[i], out[i])
	}
	return out
}

// digest3 adds each party's share of the chaining value to its share of
// the post-round working variables. On the first block, chain1/chain2/chain3
// are all the same public IV, a degenerate sharing (k xor k xor k = k);
// from the second block on they are the real per-party shares produced by
// the previous block's digest3 call. Either way this is an ordinary
// three-party modular add.
func digest3(chain1, chain2, chain3 [8]word.Word, v1, v2, v3 workingVars, p1, p2, p3 *party.Party) ([8]word.Word, [8]word.Word, [8]word.Word) {
	out1 := [8]word.Word{v1.a, v1.b, v1.c, v1.d, v1.e, v1.f, v1.g, v1.h}
	out2 := [8]word.Word{v2.a, v2.b, v2.c, v2.d, v2.e, v2.f, v2.g, v2.h}
	out3 := [8]word.Word{v3.a, v3.b, v3.c, v3.d, v3.e, v3.f, v3.g, v3.h}

	var res1, res2, res3 [8]word.Word
	for i := 0; i < 8; i++ {
		res1[i], res2[i], res3[i] = gadget.AddMod3(
			gadget.Pair{X: out1[i], Y: chain1[i]},
			gadget.Pair{X: out2[i], Y: chain2[i]},
			gadget.Pair{X: out3[i], Y: chain3[i]},
			p1, p2, p3,
		)
	}
	return res1, res2, res3
}

func digestVerify(chain, chainNext [8]word.Word, v, vNext workingVars, p, pNext *party.Party) ([8]word.Word, [8]word.Word) {
	out := [8]word.Word{v.a, v.b, v.c, v.d, v.e, v.f, v.g, v.h}
	outNext := [8]word.Word{vNext.a, vNext.b, vNext.c, vNext.d, vNext.e, vNext.f, vNext.g, vNext.h}

	var res, resNext [8]word.Word
	for i := 0; i < 8; i++ {
		res[i], resNext[i] = gadget.AddModVerify(
			gadget.Pair{X: out[i], Y: chain[i]},
			gadget.Pair{X: outNext[i], Y: chainNext[i]},
			p, pNext,
		)
	}
	return res, resNext
}
