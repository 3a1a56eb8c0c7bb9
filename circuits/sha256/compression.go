package sha256

import (
	"github.com/zkboo-go/zkboo/gadget"
	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/word"
)

// workingVars holds the eight compression round variables a..h.
type workingVars struct {
	a, b, c, d, e, f, g, h word.Word
}

func bigSigma0(a word.Word) word.Word {
	return a.RightRotate(2).Xor(a.RightRotate(13)).Xor(a.RightRotate(22))
}

func bigSigma1(e word.Word) word.Word {
	return e.RightRotate(6).Xor(e.RightRotate(11)).Xor(e.RightRotate(25))
}

// compress runs the 64-round compression function on one message block,
// in the clear, returning the post-round working variables (not yet
// combined with the chaining value).
func compress(init workingVars, w [ScheduleWords]word.Word, k [ScheduleWords]word.Word) workingVars {
	v := init
	for i := 0; i < ScheduleWords; i++ {
		s1 := bigSigma1(v.e)
		chv := ch(v.e, v.f, v.g)
		t1 := temp1(v.h, s1, chv, w[i], k[i])
		s0 := bigSigma0(v.a)
		majv := maj(v.a, v.b, v.c)
		t2 := temp2(s0, majv)

		v.h = v.g
		v.g = v.f
		v.f = v.e
		v.e = add(v.d, t1)
		v.d = v.c
		v.c = v.b
		v.b = v.a
		v.a = add(t1, t2)
	}
	return v
}

// compress3 runs the three-party compression simulation, threading every
// AND and modular-add gate through p1, p2, p3. The final register-to-register
// add (e := d+t1, a := t1+t2) is a private addition between two secret
// shares, costing one multiplication gate each, the same as every other
// modular add in the round.
func compress3(
	init1, init2, init3 workingVars,
	w1, w2, w3 [ScheduleWords]word.Word,
	k [ScheduleWords]word.Word,
	p1, p2, p3 *party.Party,
) (workingVars, workingVars, workingVars) {
	v1, v2, v3 := init1, init2, init3

	for i := 0; i < ScheduleWords; i++ {
		s1_1, s1_2, s1_3 := bigSigma1(v1.e), bigSigma1(v2.e), bigSigma1(v3.e)
		ch1, ch2, ch3v := ch3(v1.e, v1.f, v1.g, v2.e, v2.f, v2.g, v3.e, v3.f, v3.g, p1, p2, p3)
		t1_1, t1_2, t1_3 := temp1_3(
			v1.h, s1_1, ch1, w1[i],
			v2.h, s1_2, ch2, w2[i],
			v3.h, s1_3, ch3v, w3[i],
			k[i], p1, p2, p3,
		)

		s0_1, s0_2, s0_3 := bigSigma0(v1.a), bigSigma0(v2.a), bigSigma0(v3.a)
		maj1, maj2, maj3v := maj3(v1.a, v1.b, v1.c, v2.a, v2.b, v2.c, v3.a, v3.b, v3.c, p1, p2, p3)
		t2_1, t2_2, t2_3 := temp2_3(s0_1, maj1, s0_2, maj2, s0_3, maj3v, p1, p2, p3)

		e1, e2, e3 := gadget.AddMod3(
			gadget.Pair{X: v1.d, Y: t1_1}, gadget.Pair{X: v2.d, Y: t1_2}, gadget.Pair{X: v3.d, Y: t1_3},
			p1, p2, p3,
		)
		a1, a2, a3 := gadget.AddMod3(
			gadget.Pair{X: t1_1, Y: t2_1}, gadget.Pair{X: t1_2, Y: t2_2}, gadget.Pair{X: t1_3, Y: t2_3},
			p1, p2, p3,
		)

		v1.h, v2.h, v3.h = v1.g, v2.g, v3.g
		v1.g, v2.g, v3.g = v1.f, v2.f, v3.f
		v1.f, v2.f, v3.f = v1.e, v2.e, v3.e
		v1.e, v2.e, v3.e = e1, e2, e3
		v1.d, v2.d, v3.d = v1.c, v2.c, v3.c
		v1.c, v2.c, v3.c = v1.b, v2.b, v3.b
		v1.b, v2.b, v3.b = v1.a, v2.a, v3.a
		v1.a, v2.a, v3.a = a1, a2, a3
	}
	return v1, v2, v3
}

func compressVerify(
	init, initNext workingVars,
	w, wNext [ScheduleWords]word.Word,
	k [ScheduleWords]word.Word,
	p, pNext *party.Party,
) (workingVars, workingVars) {
	v, vNext := init, initNext

	for i := 0; i < ScheduleWords; i++ {
		s1, s1Next := bigSigma1(v.e), bigSigma1(vNext.e)
		chv, chNext := chVerify(v.e, v.f, v.g, vNext.e, vNext.f, vNext.g, p, pNext)
		t1, t1Next := temp1Verify(
			v.h, s1, chv, w[i],
			vNext.h, s1Next, chNext, wNext[i],
			k[i], p, pNext,
		)

		s0, s0Next := bigSigma0(v.a), bigSigma0(vNext.a)
		majv, majNext := majVerify(v.a, v.b, v.c, vNext.a, vNext.b, vNext.c, p, pNext)
		t2, t2Next := temp2Verify(s0, majv, s0Next, majNext, p, pNext)

		e, eNext := gadget.AddModVerify(
			gadget.Pair{X: v.d, Y: t1}, gadget.Pair{X: vNext.d, Y: t1Next}, p, pNext,
		)
		a, aNext := gadget.AddModVerify(
			gadget.Pair{X: t1, Y: t2}, gadget.Pair{X: t1Next, Y: t2Next}, p, pNext,
		)

		v.h, vNext.h = v.g, vNext.g
		v.g, vNext.g = v.f, vNext.f
		v.f, vNext.f = v.e, vNext.e
		v.e, vNext.e = e, eNext
		v.d, vNext.d = v.c, vNext.c
		v.c, vNext.c = v.b, vNext.b
		v.b, vNext.b = v.a, vNext.a
		v.a, vNext.a = a, aNext
	}
	return v, vNext
}
