package fiatshamir

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Oracle is a stateful Fiat–Shamir transcript. New absorbs a domain
// seed; DigestPublicData and DigestProverMessage absorb the rest of the
// transcript in the canonical order the protocol requires; SampleTrits
// finalizes the transcript into R uniform trits.
type Oracle struct {
	h hash.Hash
}

// New initializes an Oracle with a domain separation seed. Distinct
// circuits or protocol versions should use distinct seeds so that a
// transcript from one context can never be replayed as valid in another.
func New(domainSeed []byte) *Oracle {
	h := sha3.NewLegacyKeccak256()
	h.Write(domainSeed)
	return &Oracle{h: h}
}

// DigestPublicData absorbs the canonical encoding of the public input.
func (o *Oracle) DigestPublicData(data []byte) { o.h.Write(data) }

// DigestProverMessage absorbs the canonical encoding of the prover's
// commitments.
func (o *Oracle) DigestProverMessage(data []byte) { o.h.Write(data) }

func getBit(x byte, pos int) byte { return (x >> uint(pos)) & 1 }

// SampleTrits finalizes the absorbed transcript and derives r uniform
// trits in {0,1,2}. Two bits are consumed per candidate trit; a candidate
// of 3 is rejected and the stream continues. When the digest's bits are
// exhausted, the digest is re-absorbed into the (now-reset) hasher and a
// fresh digest is drawn, continuing the same rejection-sampling loop.
func (o *Oracle) SampleTrits(r int) []byte {
	digest := o.h.Sum(nil)
	o.h.Reset()

	trits := make([]byte, r)
	sampled := 0
	pos := 0
	streamBits := len(digest) * 8

	for sampled < r {
		if pos >= streamBits {
			o.h.Write(digest)
			digest = o.h.Sum(nil)
			o.h.Reset()
			pos = 0
		}

		b1 := getBit(digest[pos/8], pos%8)
		b2 := getBit(digest[(pos+1)/8], (pos+1)%8)
		trit := (b1 << 1) | b2

		if trit < 3 {
			trits[sampled] = trit
			sampled++
		}
		pos += 2
	}

	return trits
}
