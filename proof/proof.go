package proof

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/zkboo-go/zkboo/commitment"
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/word"
	"github.com/zkboo-go/zkboo/wire"
)

// ErrSerializationFailed is returned when a proof fails to encode or
// decode to the canonical wire format.
var ErrSerializationFailed = errors.New("proof: serialization failed")

// RepetitionProof is the opening for one repetition: the input share and
// full view of two of the three parties, both of their opening keys, the
// third party's commitment, and the trit that selected this opening.
type RepetitionProof struct {
	InputShare       []word.Word // s_i0
	ViewNextInput    []word.Word // v_i1.input
	ViewNextMessages []word.Word // v_i1.messages
	KeyI0            tape.Key
	KeyI1            tape.Key
	CommitmentI2     commitment.Commitment
	ClaimedTrit      byte
}

// Proof is the full non-interactive proof: R independent repetition
// openings.
type Proof struct {
	Repetitions []RepetitionProof
}

// Encode serializes the proof to the canonical wire format: an R-prefixed
// vector of repetition proofs, each field length-prefixed with a
// little-endian uint64.
func (p *Proof) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteUint64(&buf, uint64(len(p.Repetitions))); err != nil {
		return nil, fmt.Errorf("%w: writing repetition count: %v", ErrSerializationFailed, err)
	}

	for i, rp := range p.Repetitions {
		if err := encodeRepetition(&buf, rp); err != nil {
			return nil, fmt.Errorf("%w: encoding repetition %d: %v", ErrSerializationFailed, i, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeRepetition(buf *bytes.Buffer, rp RepetitionProof) error {
	if err := wire.WriteLenPrefixed(buf, wire.WordsToBytes(rp.InputShare)); err != nil {
		return err
	}
	if err := wire.WriteLenPrefixed(buf, wire.WordsToBytes(rp.ViewNextInput)); err != nil {
		return err
	}
	if err := wire.WriteLenPrefixed(buf, wire.WordsToBytes(rp.ViewNextMessages)); err != nil {
		return err
	}
	if err := wire.WriteLenPrefixed(buf, rp.KeyI0[:]); err != nil {
		return err
	}
	if err := wire.WriteLenPrefixed(buf, rp.KeyI1[:]); err != nil {
		return err
	}
	if err := wire.WriteLenPrefixed(buf, rp.CommitmentI2[:]); err != nil {
		return err
	}
	return wire.WriteLenPrefixed(buf, []byte{rp.ClaimedTrit})
}

// Decode parses the canonical wire format produced by Encode. wordWidth
// must match the circuit the proof was generated against, since the wire
// format does not itself carry the word width.
func Decode(b []byte, wordWidth int) (*Proof, error) {
	r := bytes.NewReader(b)

	count, err := wire.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading repetition count: %v", ErrSerializationFailed, err)
	}

	reps := make([]RepetitionProof, count)
	for i := range reps {
		rp, err := decodeRepetition(r, wordWidth)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding repetition %d: %v", ErrSerializationFailed, i, err)
		}
		reps[i] = rp
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after decoding %d repetitions", ErrSerializationFailed, r.Len(), count)
	}

	return &Proof{Repetitions: reps}, nil
}

func decodeRepetition(r io.Reader, wordWidth int) (RepetitionProof, error) {
	var rp RepetitionProof

	inputBytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if rp.InputShare, err = wire.BytesToWords(inputBytes, wordWidth); err != nil {
		return rp, err
	}

	viewInputBytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if rp.ViewNextInput, err = wire.BytesToWords(viewInputBytes, wordWidth); err != nil {
		return rp, err
	}

	viewMsgBytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if rp.ViewNextMessages, err = wire.BytesToWords(viewMsgBytes, wordWidth); err != nil {
		return rp, err
	}

	keyI0Bytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if len(keyI0Bytes) != tape.KeyLen {
		return rp, fmt.Errorf("proof: key_i0 has length %d, want %d", len(keyI0Bytes), tape.KeyLen)
	}
	copy(rp.KeyI0[:], keyI0Bytes)

	keyI1Bytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if len(keyI1Bytes) != tape.KeyLen {
		return rp, fmt.Errorf("proof: key_i1 has length %d, want %d", len(keyI1Bytes), tape.KeyLen)
	}
	copy(rp.KeyI1[:], keyI1Bytes)

	commitmentBytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if len(commitmentBytes) != commitment.HashLen {
		return rp, fmt.Errorf("proof: commitment_i2 has length %d, want %d", len(commitmentBytes), commitment.HashLen)
	}
	copy(rp.CommitmentI2[:], commitmentBytes)

	tritBytes, err := wire.ReadLenPrefixed(r)
	if err != nil {
		return rp, err
	}
	if len(tritBytes) != 1 {
		return rp, fmt.Errorf("proof: claimed_trit field has length %d, want 1", len(tritBytes))
	}
	rp.ClaimedTrit = tritBytes[0]

	return rp, nil
}
