// Package pharmacy implements the verifier role: a public-key registry of
// known prescribers and prescription authenticity checks.
package pharmacy

import (
	"log"
	"os"
	"strings"

	"Mirath-Signature/mirath"
	"Mirath-Signature/prescriber"
	"Mirath-Signature/prescription"
)

// Report is the outcome of a prescription check. Reason is a stable operator
// diagnostic; Valid is definitive — a check never errors on hostile input.
type Report struct {
	Valid  bool
	Reason string
}

// Registry-level reasons, ahead of any cryptographic verification.
const (
	ReasonUnsigned          = "prescription is not signed"
	ReasonUnknownPrescriber = "prescriber public key not registered"
)

// Pharmacy verifies prescriptions against registered prescriber keys.
type Pharmacy struct {
	Name string

	keys map[string]*mirath.PublicKey
}

// New returns a pharmacy with an empty key registry.
func New(name string) *Pharmacy {
	return &Pharmacy{Name: name, keys: make(map[string]*mirath.PublicKey)}
}

// RegisterKey adds a prescriber's public key to the registry.
func (ph *Pharmacy) RegisterKey(prescriberID string, pk *mirath.PublicKey) {
	ph.keys[prescriberID] = pk
}

// KnownPrescribers returns the number of registered keys.
func (ph *Pharmacy) KnownPrescribers() int { return len(ph.keys) }

// LoadPrescriberKey reads one prescriber's public key file from dir.
func (ph *Pharmacy) LoadPrescriberKey(dir, prescriberID string) error {
	pk, err := mirath.LoadPublicKey(prescriber.PublicKeyPath(dir, prescriberID))
	if err != nil {
		return err
	}
	ph.RegisterKey(prescriberID, pk)
	log.Printf("[pharmacy] registered public key for prescriber %s", prescriberID)
	return nil
}

// LoadAllKeys scans dir for *_public.json files and registers every key it
// can read. It returns the number of keys registered.
func (ph *Pharmacy) LoadAllKeys(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, "_public.json") {
			continue
		}
		id := strings.TrimSuffix(name, "_public.json")
		if err := ph.LoadPrescriberKey(dir, id); err != nil {
			log.Printf("[pharmacy] skipping %s: %v", name, err)
			continue
		}
		count++
	}
	return count, nil
}

// Check verifies a prescription's signature against the registered key of
// its prescriber. Missing signatures, unknown prescribers and every
// cryptographic rejection map to a definite invalid report.
func (ph *Pharmacy) Check(p *prescription.Prescription) Report {
	if p == nil || p.Signature == nil {
		return Report{Valid: false, Reason: ReasonUnsigned}
	}
	pk, ok := ph.keys[p.PrescriberID]
	if !ok {
		return Report{Valid: false, Reason: ReasonUnknownPrescriber}
	}
	valid, reason := mirath.VerifyRecord(p.SignableMessage(), p.Signature, pk)
	if !valid {
		log.Printf("[pharmacy] prescription for patient %s rejected: %s", p.PatientID, reason)
	}
	return Report{Valid: valid, Reason: string(reason)}
}
