package mirath

import (
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"Mirath-Signature/gf2"
)

// HashLen is the byte length of every transcript digest (SHA3-256).
const HashLen = 32

// Transcript accumulates typed inputs into a SHA3-256 digest. The encoding
// is fixed: raw bytes for byte slices, UTF-8 for strings, 8-byte big-endian
// for integers, row-major entry bytes for matrices. Both signer and verifier
// hash through this type, so the encoding is part of the wire contract.
type Transcript struct {
	h hash.Hash
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{h: sha3.New256()}
}

func (t *Transcript) write(p []byte) {
	if _, err := t.h.Write(p); err != nil {
		panic(fmt.Errorf("mirath: transcript write: %w", err))
	}
}

// Bytes absorbs a raw byte string.
func (t *Transcript) Bytes(p []byte) *Transcript {
	t.write(p)
	return t
}

// String absorbs a UTF-8 string.
func (t *Transcript) String(s string) *Transcript {
	t.write([]byte(s))
	return t
}

// Int absorbs a non-negative integer as 8 big-endian bytes.
func (t *Transcript) Int(v int) *Transcript {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	t.write(buf[:])
	return t
}

// Matrix absorbs a GF(2) matrix as its row-major entry bytes.
func (t *Transcript) Matrix(m *gf2.Matrix) *Transcript {
	t.write(m.Bytes())
	return t
}

// Sum finalizes the transcript and returns the 32-byte digest.
func (t *Transcript) Sum() []byte {
	return t.h.Sum(nil)
}

// HashMessage returns the digest of the canonical message string.
func HashMessage(message string) []byte {
	return NewTranscript().String(message).Sum()
}
