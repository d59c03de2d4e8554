package prg

import (
	"bytes"
	"testing"
)

func TestExpandDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, SeedLen)
	a := Expand(seed, 8, 8)
	b := Expand(seed, 8, 8)
	if !a.Equal(b) {
		t.Fatalf("same seed and shape produced different matrices")
	}
}

func TestExpandSeedSeparation(t *testing.T) {
	seedA := bytes.Repeat([]byte{0x01}, SeedLen)
	seedB := bytes.Repeat([]byte{0x02}, SeedLen)
	a := Expand(seedA, 8, 8)
	b := Expand(seedB, 8, 8)
	if a.Equal(b) {
		t.Fatalf("distinct seeds produced identical 64-bit matrices")
	}
	// Domain-separated derivative of the same seed must also diverge.
	c := Expand(append(append([]byte(nil), seedA...), 'C'), 8, 8)
	if a.Equal(c) {
		t.Fatalf("tagged seed produced the same matrix as the bare seed")
	}
}

func TestExpandBitOrder(t *testing.T) {
	seed := []byte("bit-order-check")
	// Both shapes read the same SHAKE stream, so the first 8 bits must agree
	// entry for entry after the row-major reshape.
	small := Expand(seed, 2, 4)
	large := Expand(seed, 4, 4)
	for i := 0; i < 8; i++ {
		if small.Data[i] != large.Data[i] {
			t.Fatalf("prefix bit %d differs between reshapes", i)
		}
	}
}

func TestExpandShapes(t *testing.T) {
	m := Expand([]byte("shape"), 5, 3)
	if m.Rows != 5 || m.Cols != 3 {
		t.Fatalf("shape %dx%d want 5x3", m.Rows, m.Cols)
	}
	for _, v := range m.Data {
		if v > 1 {
			t.Fatalf("entry %d outside GF(2)", v)
		}
	}
}

func TestFreshDraws(t *testing.T) {
	prng, err := NewSource()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	s1, err := NewSeed(prng)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	s2, err := NewSeed(prng)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(s1) != SeedLen || len(s2) != SeedLen {
		t.Fatalf("seed lengths %d/%d want %d", len(s1), len(s2), SeedLen)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("consecutive seed draws identical")
	}

	m, err := RandomMatrix(prng, 8, 2)
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	if m.Rows != 8 || m.Cols != 2 {
		t.Fatalf("mask shape %dx%d", m.Rows, m.Cols)
	}
}
