package bench

import (
	"testing"

	"Mirath-Signature/mirath"
	"Mirath-Signature/prg"
)

const benchMessage = "patient:PAT001|med:Amoxicilline,500mg,3x/day"

func benchKeyPair(b *testing.B) (*mirath.PublicKey, *mirath.SecretKey) {
	b.Helper()
	pk, sk, err := mirath.GenerateKeyPair(mirath.DefaultParams())
	if err != nil {
		b.Fatal(err)
	}
	return pk, sk
}

func BenchmarkGenerateKeyPair(b *testing.B) {
	params := mirath.DefaultParams()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mirath.GenerateKeyPair(params); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	_, sk := benchKeyPair(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mirath.Sign(benchMessage, sk); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, sk := benchKeyPair(b)
	sig, err := mirath.Sign(benchMessage, sk)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, reason := mirath.Verify(benchMessage, sig, pk); !ok {
			b.Fatalf("verify: %s", reason)
		}
	}
}

func BenchmarkExpand(b *testing.B) {
	seed := make([]byte, prg.SeedLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prg.Expand(seed, 8, 56)
	}
}
