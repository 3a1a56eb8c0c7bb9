package gadget

import (
	"testing"

	"github.com/zkboo-go/zkboo/party"
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/word"
)

func newTestParty(t *testing.T, tapeLen int, seed byte) *party.Party {
	t.Helper()
	var key tape.Key
	key[0] = seed
	p, err := party.New(nil, key, tapeLen, 32)
	if err != nil {
		t.Fatalf("party.New: %v", err)
	}
	return p
}

func TestXor3(t *testing.T) {
	x1, y1 := word.Word32(5), word.Word32(9)
	x2, y2 := word.Word32(12), word.Word32(3)
	x3, y3 := word.Word32(1), word.Word32(7)

	o1, o2, o3 := Xor3(Pair{x1, y1}, Pair{x2, y2}, Pair{x3, y3})
	sum := o1.Xor(o2).Xor(o3)

	want := x1.Xor(x2).Xor(x3).Xor(y1.Xor(y2).Xor(y3))
	if sum != want {
		t.Errorf("xor3 sum = %v, want %v", sum, want)
	}
}

func TestXor2MatchesXor3TwoPartyProjection(t *testing.T) {
	x1, y1 := word.Word32(5), word.Word32(9)
	x2, y2 := word.Word32(12), word.Word32(3)

	o1, o2 := Xor2(Pair{x1, y1}, Pair{x2, y2})
	if o1 != x1.Xor(y1) {
		t.Errorf("o1 = %v, want %v", o1, x1.Xor(y1))
	}
	if o2 != x2.Xor(y2) {
		t.Errorf("o2 = %v, want %v", o2, x2.Xor(y2))
	}
}

func TestAnd3Reconstructs(t *testing.T) {
	p1 := newTestParty(t, 1, 1)
	p2 := newTestParty(t, 1, 2)
	p3 := newTestParty(t, 1, 3)

	// shares of x=6 and y=10
	x1, x2, x3 := word.Word32(11), word.Word32(22), word.Word32(6^11^22)
	y1, y2, y3 := word.Word32(44), word.Word32(55), word.Word32(10^44^55)

	o1, o2, o3 := And3(Pair{x1, y1}, Pair{x2, y2}, Pair{x3, y3}, p1, p2, p3)
	got := o1.Xor(o2).Xor(o3)
	want := word.Word32(6 & 10)
	if got != word.Word(want) {
		t.Errorf("and3 result = %v, want %v", got, want)
	}

	if len(p1.View.Messages) != 1 || len(p2.View.Messages) != 1 || len(p3.View.Messages) != 1 {
		t.Errorf("expected exactly one broadcast message per party")
	}
}

func TestAddMod3Reconstructs(t *testing.T) {
	p1 := newTestParty(t, 1, 1)
	p2 := newTestParty(t, 1, 2)
	p3 := newTestParty(t, 1, 3)

	a := uint32(0xFFFFFFFF)
	b := uint32(1)
	a1, a2 := uint32(111), uint32(222)
	a3 := a ^ a1 ^ a2
	b1, b2 := uint32(333), uint32(444)
	b3 := b ^ b1 ^ b2

	o1, o2, o3 := AddMod3(
		Pair{word.Word32(a1), word.Word32(b1)},
		Pair{word.Word32(a2), word.Word32(b2)},
		Pair{word.Word32(a3), word.Word32(b3)},
		p1, p2, p3,
	)
	got := o1.Xor(o2).Xor(o3)
	want := word.Word32(a + b)
	if got != word.Word(want) {
		t.Errorf("addmod3 result = %v, want %v (a+b mod 2^32 = %d)", got, want, a+b)
	}
}

func TestAddMod3ConstReconstructs(t *testing.T) {
	p1 := newTestParty(t, 1, 1)
	p2 := newTestParty(t, 1, 2)
	p3 := newTestParty(t, 1, 3)

	x := uint32(1000)
	k := uint32(2500)
	x1, x2 := uint32(17), uint32(29)
	x3 := x ^ x1 ^ x2

	o1, o2, o3 := AddMod3Const(word.Word32(x1), word.Word32(x2), word.Word32(x3), word.Word32(k), p1, p2, p3)
	got := o1.Xor(o2).Xor(o3)
	want := word.Word32(x + k)
	if got != word.Word(want) {
		t.Errorf("addmod3const result = %v, want %v", got, want)
	}
}
