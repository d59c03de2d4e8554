// Command mirath drives the prescription signature system: prescriber key
// generation, prescription creation and signing, and pharmacy-side
// verification.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"Mirath-Signature/measure"
	"Mirath-Signature/pharmacy"
	"Mirath-Signature/prescriber"
	"Mirath-Signature/prescription"
)

func usage() {
	fmt.Println(`usage: mirath <gen|new|sign|verify> [options]

Subcommands:
  gen      Generate a prescriber keypair and write <dir>/{id}_public,_secret.json
           Flags:
             -id     <string>   prescriber ID (required)
             -name   <string>   prescriber family name
             -given  <string>   prescriber given name
             -dir    <string>   key directory (default: prescriber_keys)

  new      Create an unsigned prescription file
           Flags:
             -out          <path>     output file (required)
             -patient      <string>   patient family name
             -patient-given <string>  patient given name
             -patient-id   <string>   patient ID (required)
             -prescriber   <string>   prescriber family name
             -prescriber-given <string> prescriber given name
             -prescriber-id <string>  prescriber ID (required)
             -med          name,dose,regimen   repeatable medication line

  sign     Sign a prescription file in place with the prescriber's secret key
           Flags:
             -id   <string>   prescriber ID (required)
             -dir  <string>   key directory (default: prescriber_keys)
             -rx   <path>     prescription file (required)

  verify   Verify a prescription file against the registered public keys
           Flags:
             -rx   <path>     prescription file (required)
             -dir  <string>   key directory (default: prescriber_keys)
           Exit status is 0 when the prescription is authentic, 1 otherwise.`)
	os.Exit(1)
}

// medList collects repeated -med flags of the form name,dose,regimen.
type medList []prescription.Medication

func (m *medList) String() string { return fmt.Sprintf("%d medication(s)", len(*m)) }

func (m *medList) Set(v string) error {
	parts := strings.SplitN(v, ",", 3)
	if len(parts) != 3 {
		return fmt.Errorf("medication %q: want name,dose,regimen", v)
	}
	*m = append(*m, prescription.Medication{
		Name:    strings.TrimSpace(parts[0]),
		Dose:    strings.TrimSpace(parts[1]),
		Regimen: strings.TrimSpace(parts[2]),
	})
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "new":
		runNew(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	default:
		usage()
	}
	measure.Global.Dump()
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	id := fs.String("id", "", "prescriber ID")
	name := fs.String("name", "", "prescriber family name")
	given := fs.String("given", "", "prescriber given name")
	dir := fs.String("dir", prescriber.DefaultKeyDir, "key directory")
	_ = fs.Parse(args)
	if *id == "" {
		log.Fatal("gen: -id is required")
	}
	d := prescriber.New(*name, *given, *id)
	if err := d.GenerateKeys(); err != nil {
		log.Fatalf("gen: %v", err)
	}
	if err := d.SaveKeys(*dir); err != nil {
		log.Fatalf("gen: %v", err)
	}
	fmt.Printf("keys for %s written under %s\n", *id, *dir)
}

func runNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	out := fs.String("out", "", "output file")
	patient := fs.String("patient", "", "patient family name")
	patientGiven := fs.String("patient-given", "", "patient given name")
	patientID := fs.String("patient-id", "", "patient ID")
	presName := fs.String("prescriber", "", "prescriber family name")
	presGiven := fs.String("prescriber-given", "", "prescriber given name")
	presID := fs.String("prescriber-id", "", "prescriber ID")
	var meds medList
	fs.Var(&meds, "med", "medication as name,dose,regimen (repeatable)")
	_ = fs.Parse(args)
	if *out == "" || *patientID == "" || *presID == "" {
		log.Fatal("new: -out, -patient-id and -prescriber-id are required")
	}
	if len(meds) == 0 {
		log.Fatal("new: at least one -med is required")
	}
	p := prescription.New(*patient, *patientGiven, *patientID, *presName, *presGiven, *presID, meds)
	if err := p.Save(*out); err != nil {
		log.Fatalf("new: %v", err)
	}
	fmt.Printf("unsigned prescription written to %s\n", *out)
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	id := fs.String("id", "", "prescriber ID")
	dir := fs.String("dir", prescriber.DefaultKeyDir, "key directory")
	rx := fs.String("rx", "", "prescription file")
	_ = fs.Parse(args)
	if *id == "" || *rx == "" {
		log.Fatal("sign: -id and -rx are required")
	}
	d := prescriber.New("", "", *id)
	if err := d.LoadKeys(*dir); err != nil {
		log.Fatalf("sign: %v", err)
	}
	p, err := prescription.Load(*rx)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	if err := d.SignPrescription(p); err != nil {
		log.Fatalf("sign: %v", err)
	}
	if err := p.Save(*rx); err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Printf("prescription %s signed by %s\n", *rx, *id)
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	rx := fs.String("rx", "", "prescription file")
	dir := fs.String("dir", prescriber.DefaultKeyDir, "key directory")
	_ = fs.Parse(args)
	if *rx == "" {
		log.Fatal("verify: -rx is required")
	}
	p, err := prescription.Load(*rx)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	ph := pharmacy.New("cli")
	if _, err := ph.LoadAllKeys(*dir); err != nil {
		log.Fatalf("verify: %v", err)
	}
	report := ph.Check(p)
	if !report.Valid {
		fmt.Printf("INVALID: %s\n", report.Reason)
		os.Exit(1)
	}
	fmt.Println("VALID: prescription is authentic")
}
