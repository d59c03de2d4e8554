package mirath

import (
	"errors"

	"Mirath-Signature/gf2"
)

// ErrKeyDimensions reports secret-key material whose matrix shapes do not
// match the scheme parameters. It is a programming or corruption error, not
// a runtime condition to recover from.
var ErrKeyDimensions = errors.New("mirath: secret key dimensions incompatible with parameters")

// PublicKey holds the public half of a MinRank instance: the syndrome matrix
// H' (part of H = [I | H']) and the syndrome vector y, together with the seed
// H' was expanded from.
type PublicKey struct {
	SeedPK []byte
	HPrime *gf2.Matrix // (m·n−k) × k
	Y      []uint8     // length m·n−k
	Params Params
}

// SecretKey holds the secret low-rank factorization E = S·[I_r | C'].
type SecretKey struct {
	SeedSK []byte
	SeedPK []byte
	S      *gf2.Matrix // m × r
	CPrime *gf2.Matrix // r × (n−r)
	Params Params
}

// Auxiliary carries the per-repetition masking matrices revealed with the
// opening.
type Auxiliary struct {
	SAux *gf2.Matrix // m × r
	CAux *gf2.Matrix // r × (n−r)
}

// RepetitionProof is the all-but-one opening for one repetition: every seed
// except the one at EvalPoint, in ascending index order with the hidden index
// skipped, plus the masking data.
type RepetitionProof struct {
	EvalPoint   int
	OpenedSeeds [][]byte // NSeeds−1 seeds
	Aux         Auxiliary
}

// Signature is the complete non-interactive proof transcript. It is immutable
// once returned by Sign.
type Signature struct {
	Salt        []byte
	MessageHash []byte
	Commitments [][]byte // Tau digests
	Proofs      []RepetitionProof
	HChallenge  []byte
}

// checkDims verifies the secret matrices against the parameter set.
func (sk *SecretKey) checkDims() error {
	p := sk.Params
	if sk.S == nil || sk.CPrime == nil {
		return ErrKeyDimensions
	}
	if sk.S.Rows != p.M || sk.S.Cols != p.R {
		return ErrKeyDimensions
	}
	if sk.CPrime.Rows != p.R || sk.CPrime.Cols != p.N-p.R {
		return ErrKeyDimensions
	}
	return nil
}
