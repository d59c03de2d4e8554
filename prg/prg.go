// Package prg implements the deterministic seed expander and the fresh
// randomness draws used by the signature engine.
//
// Expansion is SHAKE-256 based: the same seed and dimensions always yield the
// same matrix. Key generation relies on this to reconstruct S and H' from
// their seeds, and the all-but-one opening relies on it so a verifier can
// recompute every revealed seed's matrix.
package prg

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"

	"Mirath-Signature/gf2"
)

// SeedLen is the byte length of every seed and salt.
const SeedLen = 32

// Expand derives a rows×cols GF(2) matrix from seed. The SHAKE-256 output is
// unpacked to bits most-significant first and reshaped row-major.
func Expand(seed []byte, rows, cols int) *gf2.Matrix {
	need := (rows*cols + 7) / 8
	buf := make([]byte, need)
	h := sha3.NewShake256()
	if _, err := h.Write(seed); err != nil {
		panic(fmt.Errorf("prg.Expand: write seed: %w", err))
	}
	if _, err := h.Read(buf); err != nil {
		panic(fmt.Errorf("prg.Expand: read stream: %w", err))
	}
	m := gf2.NewMatrix(rows, cols)
	for idx := 0; idx < rows*cols; idx++ {
		m.Data[idx] = (buf[idx/8] >> (7 - uint(idx%8))) & 1
	}
	return m
}

// NewSource returns a fresh cryptographically secure PRNG. Each signing or
// key-generation call takes its own source; draws are never cached or reused
// across calls.
func NewSource() (utils.PRNG, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("prg: new source: %w", err)
	}
	return prng, nil
}

// NewSeed draws a fresh SeedLen-byte seed from the source.
func NewSeed(prng utils.PRNG) ([]byte, error) {
	seed := make([]byte, SeedLen)
	if _, err := prng.Read(seed); err != nil {
		return nil, fmt.Errorf("prg: draw seed: %w", err)
	}
	return seed, nil
}

// RandomMatrix draws a uniform rows×cols GF(2) matrix from the source.
func RandomMatrix(prng utils.PRNG, rows, cols int) (*gf2.Matrix, error) {
	need := (rows*cols + 7) / 8
	buf := make([]byte, need)
	if _, err := prng.Read(buf); err != nil {
		return nil, fmt.Errorf("prg: draw matrix: %w", err)
	}
	m := gf2.NewMatrix(rows, cols)
	for idx := 0; idx < rows*cols; idx++ {
		m.Data[idx] = (buf[idx/8] >> (7 - uint(idx%8))) & 1
	}
	return m, nil
}
