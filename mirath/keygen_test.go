package mirath

import (
	"bytes"
	"testing"

	"Mirath-Signature/gf2"
	"Mirath-Signature/prg"
)

func TestGenerateKeyPairShapes(t *testing.T) {
	params := DefaultParams()
	pk, sk, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if pk.HPrime.Rows != params.SyndromeLen() || pk.HPrime.Cols != params.K {
		t.Fatalf("H' shape %dx%d want %dx%d", pk.HPrime.Rows, pk.HPrime.Cols, params.SyndromeLen(), params.K)
	}
	if len(pk.Y) != params.SyndromeLen() {
		t.Fatalf("y length %d want %d", len(pk.Y), params.SyndromeLen())
	}
	if sk.S.Rows != params.M || sk.S.Cols != params.R {
		t.Fatalf("S shape %dx%d", sk.S.Rows, sk.S.Cols)
	}
	if sk.CPrime.Rows != params.R || sk.CPrime.Cols != params.N-params.R {
		t.Fatalf("C' shape %dx%d", sk.CPrime.Rows, sk.CPrime.Cols)
	}
	if bytes.Equal(sk.SeedSK, sk.SeedPK) {
		t.Fatalf("seed_sk and seed_pk identical")
	}
}

// The public matrices must be reconstructable from their seeds, and y must be
// the syndrome of the secret factorization under H = [I | H'].
func TestKeyPairConsistency(t *testing.T) {
	params := DefaultParams()
	pk, sk, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if !pk.HPrime.Equal(prg.Expand(pk.SeedPK, params.SyndromeLen(), params.K)) {
		t.Fatalf("H' does not match its seed expansion")
	}
	if !sk.S.Equal(prg.Expand(sk.SeedSK, params.M, params.R)) {
		t.Fatalf("S does not match its seed expansion")
	}
	if !sk.CPrime.Equal(prg.Expand(taggedSeed(sk.SeedSK), params.R, params.N-params.R)) {
		t.Fatalf("C' does not match its tagged seed expansion")
	}

	c := gf2.HConcat(gf2.Identity(params.R), sk.CPrime)
	e := gf2.Mul(sk.S, c)
	vecE := e.Vec()
	split := params.SyndromeLen()
	y := gf2.AddVec(vecE[:split], gf2.MulVec(pk.HPrime, vecE[split:]))
	if !gf2.EqualVec(y, pk.Y) {
		t.Fatalf("syndrome does not match the secret factorization")
	}
}

func TestKeyPairsAreIndependent(t *testing.T) {
	params := DefaultParams()
	pk1, _, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	pk2, _, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if bytes.Equal(pk1.SeedPK, pk2.SeedPK) {
		t.Fatalf("two keypairs share seed_pk")
	}
}

func TestGenerateKeyPairRejectsBadParams(t *testing.T) {
	bad := DefaultParams()
	bad.K = bad.M*bad.N + 1
	if _, _, err := GenerateKeyPair(bad); err == nil {
		t.Fatalf("k > m·n accepted")
	}
	bad = DefaultParams()
	bad.R = bad.M
	if _, _, err := GenerateKeyPair(bad); err == nil {
		t.Fatalf("r >= min(m,n) accepted")
	}
	bad = DefaultParams()
	bad.Q = 3
	if _, _, err := GenerateKeyPair(bad); err == nil {
		t.Fatalf("q != 2 accepted")
	}
}
