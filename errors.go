package zkboo

import (
	"github.com/zkboo-go/zkboo/proof"
	"github.com/zkboo-go/zkboo/verifier"
)

// Sentinel errors returned at the package boundary. Callers should use
// errors.Is against these rather than matching on message text. They are
// defined in the packages that raise them and re-exported here so callers
// only need to import the root package.
var (
	ErrSerializationFailed        = proof.ErrSerializationFailed
	ErrVerificationFailed         = verifier.ErrVerificationFailed
	ErrOutputReconstructionFailed = verifier.ErrOutputReconstructionFailed
	ErrFiatShamirMismatch         = verifier.ErrFiatShamirMismatch
)
