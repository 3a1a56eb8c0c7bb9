package params

import "math"

// SecurityLevel is a target soundness error in bits.
type SecurityLevel int

const (
	// Sigma40 is 2^-40 soundness error, suitable for testing and
	// low-stakes proofs.
	Sigma40 SecurityLevel = 40
	// Sigma80 is 2^-80 soundness error, the canonical production choice.
	Sigma80 SecurityLevel = 80
)

// HashLen is the configured commitment/Fiat-Shamir digest length in bytes.
const HashLen = 32

// KeyLen is the configured tape seed length in bytes.
const KeyLen = 32

// perRepetitionBits is log2(3) - 1, the soundness amplification each
// repetition contributes: a cheating prover survives one repetition's
// Fiat-Shamir challenge with probability 2/3, so log2(3/2) = log2(3) - 1
// bits of security accrue per repetition.
var perRepetitionBits = math.Log2(3) - 1

// Repetitions returns R = ceil(sigma / (log2(3) - 1)), the number of
// independent MPC-in-the-head repetitions needed to drive the cheating
// probability below 2^-sigma.
func Repetitions(sigma SecurityLevel) int {
	return int(math.Ceil(float64(sigma) / perRepetitionBits))
}
