package mirath

import (
	"encoding/binary"
	"fmt"

	"Mirath-Signature/prg"
)

// evalTag labels the per-repetition hidden-index derivation in the challenge
// transcript.
const evalTag = "eval"

// Sign produces a signature over the canonical message string. Every call
// draws a fresh salt, fresh per-repetition seeds and fresh masking matrices,
// so two signatures of the same message under the same key differ.
func Sign(message string, sk *SecretKey) (*Signature, error) {
	if sk == nil {
		return nil, ErrKeyDimensions
	}
	if err := sk.Params.Validate(); err != nil {
		return nil, err
	}
	if err := sk.checkDims(); err != nil {
		return nil, err
	}
	params := sk.Params

	source, err := prg.NewSource()
	if err != nil {
		return nil, err
	}
	salt, err := prg.NewSeed(source)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	messageHash := HashMessage(message)

	// Commitment phase: per repetition, N fresh seeds plus two masking
	// matrices, bound together under the salt and repetition index.
	seeds := make([][][]byte, params.Tau)
	aux := make([]Auxiliary, params.Tau)
	commitments := make([][]byte, params.Tau)
	for e := 0; e < params.Tau; e++ {
		reps := make([][]byte, params.NSeeds)
		for i := range reps {
			if reps[i], err = prg.NewSeed(source); err != nil {
				return nil, fmt.Errorf("sign: repetition %d: %w", e, err)
			}
		}
		sAux, err := prg.RandomMatrix(source, params.M, params.R)
		if err != nil {
			return nil, fmt.Errorf("sign: repetition %d: %w", e, err)
		}
		cAux, err := prg.RandomMatrix(source, params.R, params.N-params.R)
		if err != nil {
			return nil, fmt.Errorf("sign: repetition %d: %w", e, err)
		}
		seeds[e] = reps
		aux[e] = Auxiliary{SAux: sAux, CAux: cAux}
		commitments[e] = commitRepetition(salt, e, reps, aux[e])
	}

	hCom := commitmentHash(salt, commitments)
	hChallenge := challengeHash(hCom, messageHash, sk.publicDigest())

	// Response phase: reveal all seeds except the hidden index derived from
	// the global challenge.
	proofs := make([]RepetitionProof, params.Tau)
	for e := 0; e < params.Tau; e++ {
		point := evalPoint(hChallenge, e, params.NSeeds)
		opened := make([][]byte, 0, params.NSeeds-1)
		for i := 0; i < params.NSeeds; i++ {
			if i == point {
				continue
			}
			opened = append(opened, seeds[e][i])
		}
		proofs[e] = RepetitionProof{EvalPoint: point, OpenedSeeds: opened, Aux: aux[e]}
	}

	return &Signature{
		Salt:        salt,
		MessageHash: messageHash,
		Commitments: commitments,
		Proofs:      proofs,
		HChallenge:  hChallenge,
	}, nil
}

// commitRepetition hashes one repetition's seeds and masking matrices under
// the salt and repetition index.
func commitRepetition(salt []byte, e int, seeds [][]byte, aux Auxiliary) []byte {
	t := NewTranscript().Bytes(salt).Int(e)
	for _, s := range seeds {
		t.Bytes(s)
	}
	return t.Matrix(aux.SAux).Matrix(aux.CAux).Sum()
}

// commitmentHash binds all repetition commitments under the salt.
func commitmentHash(salt []byte, commitments [][]byte) []byte {
	t := NewTranscript().Bytes(salt)
	for _, c := range commitments {
		t.Bytes(c)
	}
	return t.Sum()
}

// challengeHash is the Fiat–Shamir transform: one digest binding the global
// commitment hash, the message hash and the signer's public key. The key
// digest is what makes a signature fail under a different signer's public
// key and surfaces as a challenge mismatch.
func challengeHash(hCom, messageHash, pkDigest []byte) []byte {
	return NewTranscript().Bytes(hCom).Bytes(messageHash).Bytes(pkDigest).Sum()
}

// evalPoint derives repetition e's hidden index from the global challenge:
// the first two digest bytes, big-endian, reduced mod NSeeds.
func evalPoint(hChallenge []byte, e, nSeeds int) int {
	digest := NewTranscript().Bytes(hChallenge).Int(e).String(evalTag).Sum()
	return int(binary.BigEndian.Uint16(digest[:2])) % nSeeds
}
