package tape

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/zkboo-go/zkboo/word"
)

// KeyLen is the byte length of a tape seed.
const KeyLen = chacha20.KeySize

// Key seeds a single party's tape for a single repetition. Keys are
// generated fresh per proof and never reused.
type Key [KeyLen]byte

// zeroNonce is safe because the keystream is only ever used as randomness:
// seeding another Tape from the same Key (as the verifier does) yields the
// same words, and no data is encrypted under it.
var zeroNonce = make([]byte, chacha20.NonceSize)

// Tape is the pre-expanded stream of multiplication-gate randomness a party
// draws from during the 3-party simulation. The whole stream is generated
// up front from the seed key rather than pulled lazily gate by gate, since
// the number of AND gates a circuit needs is known ahead of time and
// batching the ChaCha20 keystream generation is cheaper than invoking it
// once per gate.
type Tape struct {
	words  []word.Word
	offset int
}

// FromKey expands key into length words of the given bit width.
func FromKey(key Key, length, width int) (*Tape, error) {
	nbytes := word.BytesForWidth(width)
	if nbytes == 0 {
		return nil, word.ErrUnsupportedWidth{Width: width}
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], zeroNonce)
	if err != nil {
		return nil, fmt.Errorf("tape: constructing keystream: %w", err)
	}

	stream := make([]byte, length*nbytes)
	cipher.XORKeyStream(stream, stream)

	words := make([]word.Word, length)
	for i := 0; i < length; i++ {
		w, err := word.FromLEBytes(width, stream[i*nbytes:(i+1)*nbytes])
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	return &Tape{words: words}, nil
}

// ReadNext returns the next word in the stream and advances the cursor. It
// panics if the tape is exhausted, since a well-formed circuit never reads
// more multiplication-gate randomness than it declared up front.
func (t *Tape) ReadNext() word.Word {
	if t.offset >= len(t.words) {
		panic(fmt.Sprintf("tape: read past end of tape (len=%d)", len(t.words)))
	}
	w := t.words[t.offset]
	t.offset++
	return w
}

// Len reports the total number of words the tape holds.
func (t *Tape) Len() int { return len(t.words) }

// Remaining reports how many words have not yet been read.
func (t *Tape) Remaining() int { return len(t.words) - t.offset }
