package proof

import (
	"testing"

	"github.com/zkboo-go/zkboo/commitment"
	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/word"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var k0, k1 tape.Key
	k0[0], k1[0] = 1, 2
	c, _ := commitment.Commit([]byte("blind"), []byte("msg"))

	p := &Proof{
		Repetitions: []RepetitionProof{
			{
				InputShare:       []word.Word{word.Word32(1), word.Word32(2)},
				ViewNextInput:    []word.Word{word.Word32(3), word.Word32(4)},
				ViewNextMessages: []word.Word{word.Word32(5)},
				KeyI0:            k0,
				KeyI1:            k1,
				CommitmentI2:     c,
				ClaimedTrit:      1,
			},
			{
				InputShare:       []word.Word{word.Word32(9)},
				ViewNextInput:    []word.Word{word.Word32(8)},
				ViewNextMessages: nil,
				KeyI0:            k1,
				KeyI1:            k0,
				CommitmentI2:     c,
				ClaimedTrit:      2,
			},
		},
	}

	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded, 32)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(decoded.Repetitions) != len(p.Repetitions) {
		t.Fatalf("got %d repetitions, want %d", len(decoded.Repetitions), len(p.Repetitions))
	}
	for i, rp := range decoded.Repetitions {
		want := p.Repetitions[i]
		if rp.ClaimedTrit != want.ClaimedTrit {
			t.Errorf("repetition %d: claimed trit %d, want %d", i, rp.ClaimedTrit, want.ClaimedTrit)
		}
		if rp.CommitmentI2 != want.CommitmentI2 {
			t.Errorf("repetition %d: commitment mismatch", i)
		}
		if rp.KeyI0 != want.KeyI0 || rp.KeyI1 != want.KeyI1 {
			t.Errorf("repetition %d: key mismatch", i)
		}
		if len(rp.InputShare) != len(want.InputShare) {
			t.Errorf("repetition %d: input share length mismatch", i)
		}
	}
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	p := &Proof{Repetitions: []RepetitionProof{{ClaimedTrit: 0}}}
	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(encoded[:len(encoded)-2], 32); err == nil {
		t.Errorf("expected error decoding truncated proof")
	}
}
