package mirath

import (
	"bytes"

	"Mirath-Signature/prg"
)

// Reason is the stable diagnostic attached to a verification outcome. The
// strings are operator-facing and must not change: they distinguish a
// tampered message from a wrong signer from a corrupt signature file.
type Reason string

const (
	ReasonOK                  Reason = "ok"
	ReasonMalformedSignature  Reason = "malformed signature"
	ReasonMessageHashMismatch Reason = "message hash mismatch"
	ReasonChallengeMismatch   Reason = "challenge mismatch"
	ReasonEvalPointMismatch   Reason = "evaluation point mismatch"
)

// Verify checks a signature against the canonical message string and the
// signer's public key. It reruns the deterministic half of the signing
// pipeline — message hash, global commitment hash, Fiat–Shamir challenge,
// per-repetition hidden indices — and accepts only if every recomputed value
// matches the claimed one.
//
// Verify never panics on malformed input and never reports a cryptographic
// mismatch as an error: the outcome is always a definite boolean with a
// reason.
func Verify(message string, sig *Signature, pk *PublicKey) (bool, Reason) {
	if pk == nil || pk.Params.Validate() != nil || pk.HPrime == nil ||
		pk.HPrime.Rows != pk.Params.SyndromeLen() || pk.HPrime.Cols != pk.Params.K ||
		len(pk.Y) != pk.Params.SyndromeLen() {
		return false, ReasonMalformedSignature
	}
	if !wellFormed(sig, pk.Params) {
		return false, ReasonMalformedSignature
	}

	messageHash := HashMessage(message)
	if !bytes.Equal(messageHash, sig.MessageHash) {
		return false, ReasonMessageHashMismatch
	}

	hCom := commitmentHash(sig.Salt, sig.Commitments)
	hChallenge := challengeHash(hCom, messageHash, pk.Digest())
	if !bytes.Equal(hChallenge, sig.HChallenge) {
		return false, ReasonChallengeMismatch
	}

	for e := range sig.Proofs {
		if sig.Proofs[e].EvalPoint != evalPoint(hChallenge, e, pk.Params.NSeeds) {
			return false, ReasonEvalPointMismatch
		}
	}
	return true, ReasonOK
}

// wellFormed performs the structural checks of the ParseInput state: field
// presence, byte lengths, counts, matrix shapes, index ranges. Anything off
// rejects immediately.
func wellFormed(sig *Signature, p Params) bool {
	if sig == nil {
		return false
	}
	if len(sig.Salt) != prg.SeedLen || len(sig.MessageHash) != HashLen || len(sig.HChallenge) != HashLen {
		return false
	}
	if len(sig.Commitments) != p.Tau || len(sig.Proofs) != p.Tau {
		return false
	}
	for _, c := range sig.Commitments {
		if len(c) != HashLen {
			return false
		}
	}
	for _, proof := range sig.Proofs {
		if proof.EvalPoint < 0 || proof.EvalPoint >= p.NSeeds {
			return false
		}
		if len(proof.OpenedSeeds) != p.NSeeds-1 {
			return false
		}
		for _, s := range proof.OpenedSeeds {
			if len(s) != prg.SeedLen {
				return false
			}
		}
		if proof.Aux.SAux == nil || proof.Aux.CAux == nil {
			return false
		}
		if proof.Aux.SAux.Rows != p.M || proof.Aux.SAux.Cols != p.R {
			return false
		}
		if proof.Aux.CAux.Rows != p.R || proof.Aux.CAux.Cols != p.N-p.R {
			return false
		}
	}
	return true
}
