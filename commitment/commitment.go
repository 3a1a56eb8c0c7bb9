package commitment

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashLen is the expected digest length in bytes. It is checked against the
// configured hash function at commit time so a future swap to a
// shorter-output digest fails loudly instead of silently truncating.
const HashLen = 32

// ErrHashLenMismatch reports that the configured digest's output size does
// not match HashLen.
type ErrHashLenMismatch struct {
	Expected int
	Actual   int
}

func (e ErrHashLenMismatch) Error() string {
	return fmt.Sprintf("commitment: expected hash length %d, got %d", e.Expected, e.Actual)
}

// Commitment is a binding commitment to a party's view under a random
// blinding key.
type Commitment [HashLen]byte

func newDigest() (func([]byte), func() []byte, error) {
	h := sha3.NewLegacyKeccak256()
	if h.Size() != HashLen {
		return nil, nil, ErrHashLenMismatch{Expected: HashLen, Actual: h.Size()}
	}
	write := func(b []byte) { h.Write(b) }
	sum := func() []byte { return h.Sum(nil) }
	return write, sum, nil
}

// Commit hashes blinding as a keying prefix followed by message, binding
// the committer to message without revealing it until Open is called with
// the same blinding.
func Commit(blinding, message []byte) (Commitment, error) {
	write, sum, err := newDigest()
	if err != nil {
		return Commitment{}, err
	}
	write(blinding)
	write(message)

	var c Commitment
	copy(c[:], sum())
	return c, nil
}

// Open reports whether c is a valid commitment to message under blinding.
// It runs in constant time with respect to the digest comparison so that
// verification timing does not leak how close a forged opening came to
// matching.
func Open(c Commitment, blinding, message []byte) (bool, error) {
	recomputed, err := Commit(blinding, message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(c[:], recomputed[:]) == 1, nil
}
