package word

import "fmt"

// ErrUnsupportedWidth is returned by FromLEBytes for a width none of the
// concrete word types implement.
type ErrUnsupportedWidth struct {
	Width int
}

func (e ErrUnsupportedWidth) Error() string {
	return fmt.Sprintf("word: unsupported width %d", e.Width)
}

// BytesForWidth returns the number of bytes a word of the given bit width
// serializes to.
func BytesForWidth(width int) int {
	return width / 8
}

// FromLEBytes parses a little-endian byte slice into the concrete Word type
// matching width. It is the dispatch point circuits use when they are
// generic over word width (tapes, views and wire decoding all go through
// here instead of hard-coding one concrete type).
func FromLEBytes(width int, b []byte) (Word, error) {
	switch width {
	case 8:
		return Word8FromLEBytes(b), nil
	case 32:
		return Word32FromLEBytes(b), nil
	case 64:
		return Word64FromLEBytes(b), nil
	case 128:
		return Word128FromLEBytes(b), nil
	default:
		return nil, ErrUnsupportedWidth{Width: width}
	}
}

// Random draws a uniform random Word of the given width from a
// cryptographically secure source.
func Random(width int) (Word, error) {
	switch width {
	case 8:
		return RandomWord8(), nil
	case 32:
		return RandomWord32(), nil
	case 64:
		return RandomWord64(), nil
	case 128:
		return RandomWord128(), nil
	default:
		return nil, ErrUnsupportedWidth{Width: width}
	}
}

// ToLEBytes serializes w as little-endian bytes, the inverse of
// FromLEBytes. It is derived from ToBEBytes by byte reversal rather than
// duplicated per concrete type, since the two orderings are byte-reverses
// of each other by definition.
func ToLEBytes(w Word) []byte {
	be := w.ToBEBytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// Zero returns the additive identity Word of the given width.
func Zero(width int) (Word, error) {
	switch width {
	case 8:
		return Word8(0), nil
	case 32:
		return Word32(0), nil
	case 64:
		return Word64(0), nil
	case 128:
		return Word128{}, nil
	default:
		return nil, ErrUnsupportedWidth{Width: width}
	}
}
