package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zkboo-go/zkboo/word"
)

// WriteUint64 writes v as a little-endian uint64.
func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadUint64 reads a little-endian uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("wire: reading uint64: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// WriteLenPrefixed writes data prefixed with its length as a little-endian
// uint64.
func WriteLenPrefixed(w io.Writer, data []byte) error {
	if err := WriteUint64(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadLenPrefixed reads a length-prefixed byte field.
func ReadLenPrefixed(r io.Reader) ([]byte, error) {
	n, err := ReadUint64(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("wire: reading %d-byte field: %w", n, err)
	}
	return buf, nil
}

// WordsToBytes concatenates the little-endian encoding of each word, in
// order.
func WordsToBytes(words []word.Word) []byte {
	if len(words) == 0 {
		return nil
	}
	width := words[0].Width()
	out := make([]byte, 0, len(words)*word.BytesForWidth(width))
	for _, w := range words {
		out = append(out, word.ToLEBytes(w)...)
	}
	return out
}

// BytesToWords splits b into words of the given bit width, parsing each
// chunk as little-endian.
func BytesToWords(b []byte, width int) ([]word.Word, error) {
	n := word.BytesForWidth(width)
	if n == 0 {
		return nil, word.ErrUnsupportedWidth{Width: width}
	}
	if len(b)%n != 0 {
		return nil, fmt.Errorf("wire: byte length %d is not a multiple of word size %d", len(b), n)
	}
	words := make([]word.Word, len(b)/n)
	for i := range words {
		w, err := word.FromLEBytes(width, b[i*n:(i+1)*n])
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}
