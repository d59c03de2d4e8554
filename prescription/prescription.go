// Package prescription defines the medical prescription record, its
// canonical signable rendering and its JSON file form.
//
// The canonical message is the one contract the record has with the
// signature engine: any two semantically different prescriptions must render
// differently, and the same prescription must always render to the same
// bytes, since the rendering is what gets hashed and signed.
package prescription

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"Mirath-Signature/mirath"
)

// Medication is one prescribed drug line.
type Medication struct {
	Name    string `json:"name"`
	Dose    string `json:"dose"`
	Regimen string `json:"regimen"`
}

// Prescription is a complete prescription record. Signature is nil until the
// prescriber signs it.
type Prescription struct {
	PatientName     string                  `json:"patient_name"`
	PatientGiven    string                  `json:"patient_given_name"`
	PatientID       string                  `json:"patient_id"`
	PrescriberName  string                  `json:"prescriber_name"`
	PrescriberGiven string                  `json:"prescriber_given_name"`
	PrescriberID    string                  `json:"prescriber_id"`
	Medications     []Medication            `json:"medications"`
	IssuedAt        string                  `json:"issued_at"`
	Signature       *mirath.SignatureRecord `json:"signature,omitempty"`
}

// New builds a prescription dated now (UTC, RFC 3339).
func New(patientName, patientGiven, patientID, prescriberName, prescriberGiven, prescriberID string, meds []Medication) *Prescription {
	return &Prescription{
		PatientName:     patientName,
		PatientGiven:    patientGiven,
		PatientID:       patientID,
		PrescriberName:  prescriberName,
		PrescriberGiven: prescriberGiven,
		PrescriberID:    prescriberID,
		Medications:     meds,
		IssuedAt:        time.Now().UTC().Format(time.RFC3339),
	}
}

// SignableMessage renders the canonical textual form of the prescription.
// The layout and field order are fixed; changing them invalidates every
// existing signature.
func (p *Prescription) SignableMessage() string {
	var b strings.Builder
	b.WriteString("=== MEDICAL PRESCRIPTION ===\n")
	fmt.Fprintf(&b, "Date: %s\n\n", p.IssuedAt)
	b.WriteString("PATIENT:\n")
	fmt.Fprintf(&b, "  Name: %s\n", p.PatientName)
	fmt.Fprintf(&b, "  Given name: %s\n", p.PatientGiven)
	fmt.Fprintf(&b, "  ID: %s\n\n", p.PatientID)
	b.WriteString("PRESCRIBER:\n")
	fmt.Fprintf(&b, "  Dr. %s %s\n", p.PrescriberGiven, p.PrescriberName)
	fmt.Fprintf(&b, "  ID: %s\n\n", p.PrescriberID)
	b.WriteString("MEDICATIONS:")
	for i, med := range p.Medications {
		fmt.Fprintf(&b, "\n  %d. %s\n", i+1, med.Name)
		fmt.Fprintf(&b, "     Dose: %s\n", med.Dose)
		fmt.Fprintf(&b, "     Regimen: %s", med.Regimen)
	}
	return b.String()
}

// Save writes the prescription (including any attached signature) to path as
// indented JSON.
func (p *Prescription) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads a prescription from path.
func Load(path string) (*Prescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Prescription
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
