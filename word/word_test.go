package word

import "testing"

func TestWord32XorAnd(t *testing.T) {
	x, y := Word32(0xF0F0F0F0), Word32(0x0F0F0F0F)
	if got := x.Xor(y); got != Word32(0xFFFFFFFF) {
		t.Errorf("xor: got %v, want ffffffff", got)
	}
	if got := x.And(y); got != Word32(0) {
		t.Errorf("and: got %v, want 0", got)
	}
}

func TestWord32RotateRoundTrips(t *testing.T) {
	x := Word32(0x12345678)
	for n := 0; n <= 32; n++ {
		rotated := x.LeftRotate(n)
		back := rotated.RightRotate(n)
		if back != Word(x) {
			t.Errorf("rotate n=%d: got %v, want %v", n, back, x)
		}
	}
}

func TestWord32BitAccess(t *testing.T) {
	x := Word32(0)
	x = x.SetBit(0, NewBit(1)).(Word32)
	x = x.SetBit(31, NewBit(1)).(Word32)
	if x.Bit(0) != 1 {
		t.Errorf("expected bit 0 set")
	}
	if x.Bit(31) != 1 {
		t.Errorf("expected bit 31 set")
	}
	if x.Bit(15) != 0 {
		t.Errorf("expected bit 15 clear")
	}
	if uint32(x) != 0x80000001 {
		t.Errorf("got %08x, want 80000001", uint32(x))
	}
}

func TestWord32ShiftBoundary(t *testing.T) {
	x := Word32(0xFFFFFFFF)
	if got := x.LeftShift(32); got != Word32(0) {
		t.Errorf("left shift by width should zero the word, got %v", got)
	}
	if got := x.RightShift(32); got != Word32(0) {
		t.Errorf("right shift by width should zero the word, got %v", got)
	}
}

func TestWord32LEBytesRoundTrip(t *testing.T) {
	x := Word32(0xDEADBEEF)
	be := x.ToBEBytes()
	if be[0] != 0xDE || be[3] != 0xEF {
		t.Errorf("unexpected big-endian bytes: %x", be)
	}
	le := []byte{0xEF, 0xBE, 0xAD, 0xDE}
	if got := Word32FromLEBytes(le); got != x {
		t.Errorf("from le bytes: got %v, want %v", got, x)
	}
}

func TestWord128ShiftAndRotate(t *testing.T) {
	x := Word128{hi: 0x0102030405060708, lo: 0x090a0b0c0d0e0f10}
	for n := 0; n <= 128; n += 7 {
		rotated := x.LeftRotate(n)
		back := rotated.RightRotate(n)
		if back != Word(x) {
			t.Errorf("rotate n=%d mismatch", n)
		}
	}
	if got := x.LeftShift(64).(Word128); got.hi != x.lo || got.lo != 0 {
		t.Errorf("left shift by 64 should move lo into hi, got %+v", got)
	}
	if got := x.RightShift(64).(Word128); got.lo != x.hi || got.hi != 0 {
		t.Errorf("right shift by 64 should move hi into lo, got %+v", got)
	}
}

func TestWord128BitAccess(t *testing.T) {
	x := Word128{}
	x = x.SetBit(127, NewBit(1)).(Word128)
	x = x.SetBit(0, NewBit(1)).(Word128)
	if x.Bit(127) != 1 || x.Bit(0) != 1 || x.Bit(64) != 0 {
		t.Errorf("unexpected bit pattern: %+v", x)
	}
}

func TestRandomWordsDiffer(t *testing.T) {
	a := RandomWord32()
	b := RandomWord32()
	if a == b {
		t.Errorf("two random draws collided, vanishingly unlikely: %v", a)
	}
}
