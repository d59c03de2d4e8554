// Package mirath implements a simplified MinRank-based signature scheme:
// key generation over a MinRank instance, Fiat–Shamir transformed
// commit/challenge/response signing with all-but-one seed openings, and a
// fail-closed verification state machine.
//
// The package is a stateless function library: no call retains references to
// keys or signatures, so signing and verification are safe to run
// concurrently.
package mirath

import "fmt"

// Params fixes the scheme constants: the GF(2) MinRank instance shape
// (M, N, K, R), the repetition count Tau, the per-repetition seed-set size
// NSeeds, and the target security level Lambda in bits.
type Params struct {
	Q      int `json:"q"`
	M      int `json:"m"`
	N      int `json:"n"`
	K      int `json:"k"`
	R      int `json:"r"`
	Tau    int `json:"tau"`
	NSeeds int `json:"N"`
	Lambda int `json:"lambda"`
}

// DefaultParams returns the reduced demo parameter set. Soundness error is
// roughly (1/NSeeds)^Tau.
func DefaultParams() Params {
	return Params{Q: 2, M: 8, N: 8, K: 56, R: 2, Tau: 3, NSeeds: 16, Lambda: 128}
}

// Validate checks the structural invariants of the parameter set.
func (p Params) Validate() error {
	if p.Q != 2 {
		return fmt.Errorf("params: only GF(2) is supported, got q=%d", p.Q)
	}
	if p.M <= 0 || p.N <= 0 || p.K <= 0 || p.R <= 0 {
		return fmt.Errorf("params: non-positive dimension (m=%d n=%d k=%d r=%d)", p.M, p.N, p.K, p.R)
	}
	if p.K > p.M*p.N {
		return fmt.Errorf("params: k=%d exceeds m·n=%d", p.K, p.M*p.N)
	}
	minMN := p.M
	if p.N < minMN {
		minMN = p.N
	}
	if p.R >= minMN {
		return fmt.Errorf("params: rank r=%d must be below min(m,n)=%d", p.R, minMN)
	}
	if p.Tau < 1 {
		return fmt.Errorf("params: tau=%d must be >= 1", p.Tau)
	}
	// The hidden index is derived from two digest bytes.
	if p.NSeeds < 2 || p.NSeeds > 1<<16 {
		return fmt.Errorf("params: N=%d outside [2, 65536]", p.NSeeds)
	}
	return nil
}

// SyndromeLen returns the length m·n−k of the public syndrome vector.
func (p Params) SyndromeLen() int { return p.M*p.N - p.K }
