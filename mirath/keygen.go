package mirath

import (
	"fmt"

	"Mirath-Signature/gf2"
	"Mirath-Signature/prg"
)

// cprimeTag domain-separates the C' expansion from the S expansion of the
// same secret seed.
const cprimeTag = 'C'

// GenerateKeyPair builds a fresh MinRank instance. The public syndrome is
// y = vec(E)_A ⊕ H'·vec(E)_B with E = S·[I_r | C'], where vec(E) is split
// column-major at offset m·n−k.
func GenerateKeyPair(params Params) (*PublicKey, *SecretKey, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	source, err := prg.NewSource()
	if err != nil {
		return nil, nil, err
	}
	seedSK, err := prg.NewSeed(source)
	if err != nil {
		return nil, nil, fmt.Errorf("keygen: %w", err)
	}
	seedPK, err := prg.NewSeed(source)
	if err != nil {
		return nil, nil, fmt.Errorf("keygen: %w", err)
	}

	hPrime := prg.Expand(seedPK, params.SyndromeLen(), params.K)
	s := prg.Expand(seedSK, params.M, params.R)
	cPrime := prg.Expand(taggedSeed(seedSK), params.R, params.N-params.R)

	pk := &PublicKey{
		SeedPK: seedPK,
		HPrime: hPrime,
		Y:      syndrome(params, hPrime, s, cPrime),
		Params: params,
	}
	sk := &SecretKey{
		SeedSK: seedSK,
		SeedPK: seedPK,
		S:      s,
		CPrime: cPrime,
		Params: params,
	}
	return pk, sk, nil
}

// taggedSeed appends the C' domain tag to a copy of the seed.
func taggedSeed(seed []byte) []byte {
	out := make([]byte, len(seed)+1)
	copy(out, seed)
	out[len(seed)] = cprimeTag
	return out
}

// Digest hashes the public key material (seed, H', y) for challenge binding.
func (pk *PublicKey) Digest() []byte {
	return NewTranscript().Bytes(pk.SeedPK).Matrix(pk.HPrime).Bytes(pk.Y).Sum()
}

// publicDigest recomputes the public key digest from the secret key alone;
// the signer does not need the public key at hand to sign.
func (sk *SecretKey) publicDigest() []byte {
	params := sk.Params
	hPrime := prg.Expand(sk.SeedPK, params.SyndromeLen(), params.K)
	y := syndrome(params, hPrime, sk.S, sk.CPrime)
	return NewTranscript().Bytes(sk.SeedPK).Matrix(hPrime).Bytes(y).Sum()
}

// syndrome computes y from the public matrix and the secret factorization.
func syndrome(params Params, hPrime, s, cPrime *gf2.Matrix) []uint8 {
	c := gf2.HConcat(gf2.Identity(params.R), cPrime)
	e := gf2.Mul(s, c)
	vecE := e.Vec()
	split := params.SyndromeLen()
	vecA := vecE[:split]
	vecB := vecE[split:]
	return gf2.AddVec(vecA, gf2.MulVec(hPrime, vecB))
}
