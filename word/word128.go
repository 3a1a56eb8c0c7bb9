package word

import "fmt"

// Word128 is the 128-bit word. Go has no native 128-bit integer, so it is
// represented as two 64-bit limbs, high and low, and every operation is
// hand-written in terms of them — the concrete case the tagged-union design
// in doc.go exists for.
type Word128 struct {
	hi, lo uint64
}

// RandomWord128 draws a uniform Word128 from a cryptographically secure
// source.
func RandomWord128() Word128 {
	var buf [16]byte
	randomBytes(buf[:])
	return Word128FromLEBytes(buf[:]).(Word128)
}

// Word128FromLEBytes parses a little-endian 16-byte slice into a Word128.
func Word128FromLEBytes(b []byte) Word {
	if len(b) != 16 {
		panic(fmt.Sprintf("word: Word128FromLEBytes expects 16 bytes, got %d", len(b)))
	}
	var lo, hi uint64
	for i := 7; i >= 0; i-- {
		lo = lo<<8 | uint64(b[i])
	}
	for i := 15; i >= 8; i-- {
		hi = hi<<8 | uint64(b[i])
	}
	return Word128{hi: hi, lo: lo}
}

func (w Word128) String() string { return fmt.Sprintf("%016x%016x", w.hi, w.lo) }
func (w Word128) Width() int     { return 128 }

func (w Word128) Xor(other Word) Word {
	o := other.(Word128)
	return Word128{hi: w.hi ^ o.hi, lo: w.lo ^ o.lo}
}

func (w Word128) And(other Word) Word {
	o := other.(Word128)
	return Word128{hi: w.hi & o.hi, lo: w.lo & o.lo}
}

func (w Word128) Not() Word {
	return Word128{hi: ^w.hi, lo: ^w.lo}
}

func (w Word128) LeftShift(n int) Word {
	checkIndex(128, n)
	switch {
	case n == 0:
		return w
	case n == 128:
		return Word128{}
	case n < 64:
		return Word128{hi: (w.hi << uint(n)) | (w.lo >> uint(64-n)), lo: w.lo << uint(n)}
	case n == 64:
		return Word128{hi: w.lo, lo: 0}
	default:
		return Word128{hi: w.lo << uint(n-64), lo: 0}
	}
}

func (w Word128) RightShift(n int) Word {
	checkIndex(128, n)
	switch {
	case n == 0:
		return w
	case n == 128:
		return Word128{}
	case n < 64:
		return Word128{lo: (w.lo >> uint(n)) | (w.hi << uint(64-n)), hi: w.hi >> uint(n)}
	case n == 64:
		return Word128{lo: w.hi, hi: 0}
	default:
		return Word128{lo: w.hi >> uint(n-64), hi: 0}
	}
}

// LeftRotate is built from LeftShift/RightShift rather than math/bits,
// which has no 128-bit rotate primitive.
func (w Word128) LeftRotate(n int) Word {
	checkIndex(128, n)
	left := w.LeftShift(n).(Word128)
	right := w.RightShift(128 - n).(Word128)
	return left.Xor(right).(Word128)
}

func (w Word128) RightRotate(n int) Word {
	checkIndex(128, n)
	right := w.RightShift(n).(Word128)
	left := w.LeftShift(128 - n).(Word128)
	return right.Xor(left).(Word128)
}

func (w Word128) Bit(pos int) Bit {
	checkBitIndex(128, pos)
	if pos < 64 {
		return NewBit(uint8((w.lo >> uint(pos)) & 1))
	}
	return NewBit(uint8((w.hi >> uint(pos-64)) & 1))
}

func (w Word128) SetBit(pos int, v Bit) Word {
	checkBitIndex(128, pos)
	if pos < 64 {
		mask := uint64(1) << uint(pos)
		if v.Bool() {
			return Word128{hi: w.hi, lo: w.lo | mask}
		}
		return Word128{hi: w.hi, lo: w.lo &^ mask}
	}
	mask := uint64(1) << uint(pos-64)
	if v.Bool() {
		return Word128{hi: w.hi | mask, lo: w.lo}
	}
	return Word128{hi: w.hi &^ mask, lo: w.lo}
}

func (w Word128) ToBEBytes() []byte {
	out := make([]byte, 16)
	for i := 0; i < 8; i++ {
		out[i] = byte(w.hi >> uint(56-8*i))
		out[8+i] = byte(w.lo >> uint(56-8*i))
	}
	return out
}
