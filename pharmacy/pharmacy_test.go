package pharmacy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Mirath-Signature/mirath"
	"Mirath-Signature/prescriber"
	"Mirath-Signature/prescription"
)

func signedPrescription(t *testing.T, d *prescriber.Prescriber) *prescription.Prescription {
	t.Helper()
	p := prescription.New("Dupont", "Jean", "PAT001", "Martin", "Sophie", d.ID,
		[]prescription.Medication{{Name: "Amoxicilline", Dose: "500mg", Regimen: "3x/day"}})
	p.IssuedAt = "2026-08-26T10:00:00Z"
	require.NoError(t, d.SignPrescription(p))
	return p
}

func newPrescriber(t *testing.T, id string) *prescriber.Prescriber {
	t.Helper()
	d := prescriber.New("Martin", "Sophie", id)
	require.NoError(t, d.GenerateKeys())
	return d
}

func TestCheckValidPrescription(t *testing.T) {
	d := newPrescriber(t, "MED001")
	ph := New("Central Pharmacy")
	ph.RegisterKey(d.ID, d.PublicKey())

	report := ph.Check(signedPrescription(t, d))
	assert.True(t, report.Valid)
	assert.Equal(t, string(mirath.ReasonOK), report.Reason)
}

func TestCheckUnsigned(t *testing.T) {
	ph := New("Central Pharmacy")
	p := prescription.New("Dupont", "Jean", "PAT001", "Martin", "Sophie", "MED001", nil)

	report := ph.Check(p)
	assert.False(t, report.Valid)
	assert.Equal(t, ReasonUnsigned, report.Reason)

	report = ph.Check(nil)
	assert.False(t, report.Valid)
	assert.Equal(t, ReasonUnsigned, report.Reason)
}

func TestCheckUnknownPrescriber(t *testing.T) {
	d := newPrescriber(t, "MED001")
	ph := New("Central Pharmacy")
	// Key never registered.
	report := ph.Check(signedPrescription(t, d))
	assert.False(t, report.Valid)
	assert.Equal(t, ReasonUnknownPrescriber, report.Reason)
}

func TestCheckTamperedDose(t *testing.T) {
	d := newPrescriber(t, "MED001")
	ph := New("Central Pharmacy")
	ph.RegisterKey(d.ID, d.PublicKey())

	p := signedPrescription(t, d)
	p.Medications[0].Dose = "1000mg"

	report := ph.Check(p)
	assert.False(t, report.Valid)
	assert.Equal(t, string(mirath.ReasonMessageHashMismatch), report.Reason)
}

func TestCheckWrongSignerKey(t *testing.T) {
	d1 := newPrescriber(t, "MED001")
	d2 := newPrescriber(t, "MED002")
	ph := New("Central Pharmacy")
	// Register the wrong key under d1's ID.
	ph.RegisterKey(d1.ID, d2.PublicKey())

	report := ph.Check(signedPrescription(t, d1))
	assert.False(t, report.Valid)
	assert.Equal(t, string(mirath.ReasonChallengeMismatch), report.Reason)
}

func TestCheckCorruptSignatureRecord(t *testing.T) {
	d := newPrescriber(t, "MED001")
	ph := New("Central Pharmacy")
	ph.RegisterKey(d.ID, d.PublicKey())

	p := signedPrescription(t, d)
	p.Signature.Salt = "not-hex"
	report := ph.Check(p)
	assert.False(t, report.Valid)
	assert.Equal(t, string(mirath.ReasonMalformedSignature), report.Reason)
}

func TestSignedPrescriptionFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := newPrescriber(t, "MED001")
	require.NoError(t, d.SaveKeys(dir))

	p := signedPrescription(t, d)
	rxPath := filepath.Join(dir, "rx.json")
	require.NoError(t, p.Save(rxPath))

	loaded, err := prescription.Load(rxPath)
	require.NoError(t, err)

	ph := New("Central Pharmacy")
	require.NoError(t, ph.LoadPrescriberKey(dir, d.ID))
	report := ph.Check(loaded)
	assert.True(t, report.Valid, "reason: %s", report.Reason)
}

func TestLoadAllKeys(t *testing.T) {
	dir := t.TempDir()
	d1 := newPrescriber(t, "MED001")
	d2 := newPrescriber(t, "MED002")
	require.NoError(t, d1.SaveKeys(dir))
	require.NoError(t, d2.SaveKeys(dir))

	ph := New("Central Pharmacy")
	n, err := ph.LoadAllKeys(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, ph.KnownPrescribers())

	// End to end through files: prescriptions signed before the save still
	// verify with the reloaded keys.
	report := ph.Check(signedPrescription(t, d1))
	assert.True(t, report.Valid, "reason: %s", report.Reason)
}
