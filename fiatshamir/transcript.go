package fiatshamir

import (
	"bytes"

	"github.com/zkboo-go/zkboo/commitment"
	"github.com/zkboo-go/zkboo/word"
	"github.com/zkboo-go/zkboo/wire"
)

// EncodePublicInput produces the canonical byte encoding of the public
// input pi = (outputs, public_output, hash_len, security_param). outputs
// must already be in canonical order: repetition index ascending, then
// party index ascending within a repetition.
func EncodePublicInput(outputs [][]word.Word, publicOutput []word.Word, hashLen, sigma int) []byte {
	var buf bytes.Buffer

	wire.WriteUint64(&buf, uint64(len(outputs)))
	for _, o := range outputs {
		wire.WriteLenPrefixed(&buf, wire.WordsToBytes(o))
	}
	wire.WriteLenPrefixed(&buf, wire.WordsToBytes(publicOutput))
	wire.WriteUint64(&buf, uint64(hashLen))
	wire.WriteUint64(&buf, uint64(sigma))

	return buf.Bytes()
}

// EncodeCommitments produces the canonical byte encoding of the ordered
// vector of 3R commitments, in the same (repetition, party-index) order
// used for outputs.
func EncodeCommitments(commitments []commitment.Commitment) []byte {
	var buf bytes.Buffer

	wire.WriteUint64(&buf, uint64(len(commitments)))
	for _, c := range commitments {
		wire.WriteLenPrefixed(&buf, c[:])
	}

	return buf.Bytes()
}
