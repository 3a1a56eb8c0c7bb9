package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// ScheduleWords is the number of words in the expanded message schedule.
const ScheduleWords = 64

func smallSigma0(w word.Word) word.Word {
	return w.RightRotate(7).Xor(w.RightRotate(18)).Xor(w.RightShift(3))
}

func smallSigma1(w word.Word) word.Word {
	return w.RightRotate(17).Xor(w.RightRotate(19)).Xor(w.RightShift(10))
}

// expandSchedule extends the 16-word block into the 64-word message
// schedule, in the clear.
func expandSchedule(block [BlockWords]word.Word) [ScheduleWords]word.Word {
	var w [ScheduleWords]word.Word
	copy(w[:], block[:])

	for i := 16; i < ScheduleWords; i++ {
		s0 := smallSigma0(w[i-15])
		s1 := smallSigma1(w[i-2])
		lhs := add(w[i-16], s0)
		rhs := add(w[i-7], s1)
		w[i] = add(lhs, rhs)
	}
	return w
}

func expandSchedule3(
	block1, block2, block3 [BlockWords]word.Word,
	p1, p2, p3 *party.Party,
) ([ScheduleWords]word.Word, [ScheduleWords]word.Word, [ScheduleWords]word.Word) {
	var w1, w2, w3 [ScheduleWords]word.Word
	copy(w1[:], block1[:])
	copy(w2[:], block2[:])
	copy(w3[:], block3[:])

	for i := 16; i < ScheduleWords; i++ {
		s0_1, s0_2, s0_3 := smallSigma0(w1[i-15]), smallSigma0(w2[i-15]), smallSigma0(w3[i-15])
		s1_1, s1_2, s1_3 := smallSigma1(w1[i-2]), smallSigma1(w2[i-2]), smallSigma1(w3[i-2])

		lhs1, lhs2, lhs3 := gadget.AddMod3(
			gadget.Pair{X: w1[i-16], Y: s0_1},
			gadget.Pair{X: w2[i-16], Y: s0_2},
			gadget.Pair{X: w3[i-16], Y: s0_3},
			p1, p2, p3,
		)
		rhs1, rhs2, rhs3 := gadget.AddMod3(
			gadget.Pair{X: w1[i-7], Y: s1_1},
			gadget.Pair{X: w2[i-7], Y: s1_2},
			gadget.Pair{X: w3[i-7], Y: s1_3},
			p1, p2, p3,
		)
		o1, o2, o3 := gadget.AddMod3(
			gadget.Pair{X: lhs1, Y: rhs1},
			gadget.Pair{X: lhs2, Y: rhs2},
			gadget.Pair{X: lhs3, Y: rhs3},
			p1, p2, p3,
		)
		w1[i], w2[i], w3[i] = o1, o2, o3
	}
	return w1, w2, w3
}

func expandScheduleVerify(
	block, blockNext [BlockWords]word.Word,
	p, pNext *party.Party,
) ([ScheduleWords]word.Word, [ScheduleWords]word.Word) {
	var w, wNext [ScheduleWords]word.Word
	copy(w[:], block[:])
	copy(wNext[:], blockNext[:])

	for i := 16; i < ScheduleWords; i++ {
		s0, s0Next := smallSigma0(w[i-15]), smallSigma0(wNext[i-15])
		s1, s1Next := smallSigma1(w[i-2]), smallSigma1(wNext[i-2])

		lhs, lhsNext := gadget.AddModVerify(
			gadget.Pair{X: w[i-16], Y: s0}, gadget.Pair{X: wNext[i-16], Y: s0Next}, p, pNext,
		)
		rhs, rhsNext := gadget.AddModVerify(
			gadget.Pair{X: w[i-7], Y: s1}, gadget.Pair{X: wNext[i-7], Y: s1Next}, p, pNext,
		)
		o, oNext := gadget.AddModVerify(
			gadget.Pair{X: lhs, Y: rhs}, gadget.Pair{X: lhsNext, Y: rhsNext}, p, pNext,
		)
		w[i], wNext[i] = o, oNext
	}
	return w, wNext
}
