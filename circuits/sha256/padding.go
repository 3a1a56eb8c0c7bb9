package sha256

import "github.com/zkboo-go/zkboo/word"

// BlockWords is the number of 32-bit words in one 512-bit message block.
const BlockWords = 16

// Pad appends the standard SHA-256 bit-padding (a single 1 bit, zero bits,
// and a 64-bit big-endian length) and returns the result as big-endian
// 32-bit words, a multiple of BlockWords long.
func Pad(input []byte) []word.Word {
	msg := make([]byte, len(input), len(input)+72)
	copy(msg, input)

	lengthBits := uint64(8 * len(input))
	msg = append(msg, 0x80)
	for (len(msg)*8+64)%512 != 0 {
		msg = append(msg, 0x00)
	}
	for shift := 56; shift >= 0; shift -= 8 {
		msg = append(msg, byte(lengthBits>>uint(shift)))
	}

	words := make([]word.Word, len(msg)/4)
	for i := range words {
		chunk := msg[4*i : 4*i+4]
		v := uint32(chunk[0])<<24 | uint32(chunk[1])<<16 | uint32(chunk[2])<<8 | uint32(chunk[3])
		words[i] = word.Word32(v)
	}
	return words
}

// NumBlocks returns the number of 512-bit blocks a padded message occupies.
func NumBlocks(paddedWords []word.Word) int {
	return len(paddedWords) / BlockWords
}
