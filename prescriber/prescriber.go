// Package prescriber implements the signer role: key lifecycle for a doctor
// and signing of prescription records.
package prescriber

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"Mirath-Signature/mirath"
	"Mirath-Signature/prescription"
)

// DefaultKeyDir is where prescriber key files live unless a caller chooses
// otherwise.
const DefaultKeyDir = "prescriber_keys"

var (
	// ErrKeyUnavailable reports a signing attempt without a loaded secret key.
	ErrKeyUnavailable = errors.New("prescriber: secret key unavailable")
	// ErrOwnershipMismatch reports a prescription issued under a different
	// prescriber ID than the signing key's owner.
	ErrOwnershipMismatch = errors.New("prescriber: prescription issued by a different prescriber")
)

// Prescriber is a doctor who owns a Mirath keypair and signs prescriptions.
type Prescriber struct {
	Name  string
	Given string
	ID    string

	publicKey *mirath.PublicKey
	secretKey *mirath.SecretKey
}

// New returns a prescriber without keys; call GenerateKeys or LoadKeys.
func New(name, given, id string) *Prescriber {
	return &Prescriber{Name: name, Given: given, ID: id}
}

// PublicKey exposes the loaded public key, or nil.
func (d *Prescriber) PublicKey() *mirath.PublicKey { return d.publicKey }

// GenerateKeys creates a fresh keypair for the prescriber.
func (d *Prescriber) GenerateKeys() error {
	log.Printf("[prescriber] generating keypair for %s", d.ID)
	pk, sk, err := mirath.GenerateKeyPair(mirath.DefaultParams())
	if err != nil {
		return fmt.Errorf("prescriber %s: %w", d.ID, err)
	}
	d.publicKey = pk
	d.secretKey = sk
	return nil
}

// SaveKeys writes {id}_public.json and {id}_secret.json under dir, creating
// it if needed. The secret file must stay in the prescriber's custody.
func (d *Prescriber) SaveKeys(dir string) error {
	if d.publicKey == nil || d.secretKey == nil {
		return ErrKeyUnavailable
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := mirath.SavePublicKey(PublicKeyPath(dir, d.ID), d.publicKey); err != nil {
		return err
	}
	if err := mirath.SaveSecretKey(SecretKeyPath(dir, d.ID), d.secretKey); err != nil {
		return err
	}
	log.Printf("[prescriber] keys for %s written under %s", d.ID, dir)
	return nil
}

// LoadKeys reads the prescriber's key files from dir.
func (d *Prescriber) LoadKeys(dir string) error {
	pk, err := mirath.LoadPublicKey(PublicKeyPath(dir, d.ID))
	if err != nil {
		return fmt.Errorf("prescriber %s: load public key: %w", d.ID, err)
	}
	sk, err := mirath.LoadSecretKey(SecretKeyPath(dir, d.ID), pk.Params)
	if err != nil {
		return fmt.Errorf("prescriber %s: load secret key: %w", d.ID, err)
	}
	d.publicKey = pk
	d.secretKey = sk
	log.Printf("[prescriber] keys loaded for %s", d.ID)
	return nil
}

// SignPrescription signs the prescription's canonical message and attaches
// the signature record to it.
func (d *Prescriber) SignPrescription(p *prescription.Prescription) error {
	if d.secretKey == nil {
		return ErrKeyUnavailable
	}
	if p.PrescriberID != d.ID {
		return fmt.Errorf("%w: prescription for %s, key owner %s", ErrOwnershipMismatch, p.PrescriberID, d.ID)
	}
	sig, err := mirath.Sign(p.SignableMessage(), d.secretKey)
	if err != nil {
		return fmt.Errorf("prescriber %s: %w", d.ID, err)
	}
	p.Signature = sig.Record()
	log.Printf("[prescriber] prescription for patient %s signed by %s", p.PatientID, d.ID)
	return nil
}

// PublicKeyPath returns the public key file path for a prescriber ID.
func PublicKeyPath(dir, id string) string {
	return filepath.Join(dir, id+"_public.json")
}

// SecretKeyPath returns the secret key file path for a prescriber ID.
func SecretKeyPath(dir, id string) string {
	return filepath.Join(dir, id+"_secret.json")
}
