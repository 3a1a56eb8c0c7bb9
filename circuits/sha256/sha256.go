package sha256

import (
	"fmt"

	"github.com/zkboo-go/zkboo/circuit"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// mulGatesPerBlock is ch(1) + maj(1) + temp1(4) + temp2(1) + the round's
// two private register adds (1 each), times 64 rounds, plus the 48-word
// schedule expansion's 3 adds per extended word, plus the 8-word digest
// add.
const mulGatesPerBlock = 64*9 + 48*3 + 8

// Circuit computes the SHA-256 digest of a Blocks-block padded message:
// PartyInputLen words in, 8 words (256 bits) out.
type Circuit struct {
	Blocks int
}

var _ circuit.Circuit = Circuit{}

func toBlock(words []word.Word) [BlockWords]word.Word {
	var b [BlockWords]word.Word
	copy(b[:], words)
	return b
}

func chainToVars(chain [8]word.Word) workingVars {
	return workingVars{chain[0], chain[1], chain[2], chain[3], chain[4], chain[5], chain[6], chain[7]}
}

func (c Circuit) Compute(input []word.Word) []word.Word {
	if len(input) != c.PartyInputLen() {
		panic(fmt.Sprintf("sha256: expected %d input words, got %d", c.PartyInputLen(), len(input)))
	}

	chain := ivWords()
	k := roundConstantWords()

	for blk := 0; blk < c.Blocks; blk++ {
		block := toBlock(input[blk*BlockWords : (blk+1)*BlockWords])
		w := expandSchedule(block)
		v := compress(chainToVars(chain), w, k)
		chain = digest(chain, v)
	}
	return chain[:]
}

func (c Circuit) Compute23Decomposition(p1, p2, p3 *party.Party) circuit.TwoThreeDecOutput {
	x1, x2, x3 := p1.View.Input, p2.View.Input, p3.View.Input
	k := roundConstantWords()

	iv := ivWords()
	chain1, chain2, chain3 := iv, iv, iv

	for blk := 0; blk < c.Blocks; blk++ {
		block1 := toBlock(x1[blk*BlockWords : (blk+1)*BlockWords])
		block2 := toBlock(x2[blk*BlockWords : (blk+1)*BlockWords])
		block3 := toBlock(x3[blk*BlockWords : (blk+1)*BlockWords])

		w1, w2, w3 := expandSchedule3(block1, block2, block3, p1, p2, p3)
		v1, v2, v3 := compress3(chainToVars(chain1), chainToVars(chain2), chainToVars(chain3), w1, w2, w3, k, p1, p2, p3)
		chain1, chain2, chain3 = digest3(chain1, chain2, chain3, v1, v2, v3, p1, p2, p3)
	}

	return circuit.TwoThreeDecOutput{
		Out1: chain1[:],
		Out2: chain2[:],
		Out3: chain3[:],
	}
}

func (c Circuit) SimulateTwoParties(p, pNext *party.Party) ([]word.Word, []word.Word, error) {
	x, xNext := p.View.Input, pNext.View.Input
	k := roundConstantWords()

	iv := ivWords()
	chain, chainNext := iv, iv

	for blk := 0; blk < c.Blocks; blk++ {
		block := toBlock(x[blk*BlockWords : (blk+1)*BlockWords])
		blockNext := toBlock(xNext[blk*BlockWords : (blk+1)*BlockWords])

		w, wNext := expandScheduleVerify(block, blockNext, p, pNext)
		v, vNext := compressVerify(chainToVars(chain), chainToVars(chainNext), w, wNext, k, p, pNext)
		chain, chainNext = digestVerify(chain, chainNext, v, vNext, p, pNext)
	}

	return chain[:], chainNext[:], nil
}

func (c Circuit) PartyInputLen() int  { return c.Blocks * BlockWords }
func (c Circuit) PartyOutputLen() int { return 8 }
func (c Circuit) NumOfMulGates() int  { return c.Blocks * mulGatesPerBlock }
func (c Circuit) WordWidth() int      { return 32 }
