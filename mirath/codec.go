package mirath

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"Mirath-Signature/gf2"
	"Mirath-Signature/measure"
)

// Record converts a public key to its wire form.
func (pk *PublicKey) Record() *PublicKeyRecord {
	return &PublicKeyRecord{
		SeedPK: hex.EncodeToString(pk.SeedPK),
		HPrime: matrixRows(pk.HPrime),
		Y:      vecInts(pk.Y),
		Params: ParamsRecord{M: pk.Params.M, N: pk.Params.N, K: pk.Params.K, R: pk.Params.R},
	}
}

// Key rebuilds a public key from its wire form. The scheme constants Tau,
// NSeeds and Lambda come from DefaultParams; the instance shape comes from
// the record.
func (r *PublicKeyRecord) Key() (*PublicKey, error) {
	params := DefaultParams()
	params.M, params.N, params.K, params.R = r.Params.M, r.Params.N, r.Params.K, r.Params.R
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seedPK, err := hex.DecodeString(r.SeedPK)
	if err != nil {
		return nil, fmt.Errorf("public key: seed_pk: %w", err)
	}
	hPrime, err := rowsMatrix(r.HPrime)
	if err != nil {
		return nil, fmt.Errorf("public key: H_prime: %w", err)
	}
	if hPrime.Rows != params.SyndromeLen() || hPrime.Cols != params.K {
		return nil, fmt.Errorf("public key: H_prime shape %dx%d want %dx%d",
			hPrime.Rows, hPrime.Cols, params.SyndromeLen(), params.K)
	}
	y, err := intsVec(r.Y)
	if err != nil {
		return nil, fmt.Errorf("public key: y: %w", err)
	}
	if len(y) != params.SyndromeLen() {
		return nil, fmt.Errorf("public key: y length %d want %d", len(y), params.SyndromeLen())
	}
	return &PublicKey{SeedPK: seedPK, HPrime: hPrime, Y: y, Params: params}, nil
}

// Record converts a secret key to its wire form.
func (sk *SecretKey) Record() *SecretKeyRecord {
	return &SecretKeyRecord{
		SeedSK: hex.EncodeToString(sk.SeedSK),
		SeedPK: hex.EncodeToString(sk.SeedPK),
		S:      matrixRows(sk.S),
		CPrime: matrixRows(sk.CPrime),
	}
}

// Key rebuilds a secret key from its wire form under the given parameters.
func (r *SecretKeyRecord) Key(params Params) (*SecretKey, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seedSK, err := hex.DecodeString(r.SeedSK)
	if err != nil {
		return nil, fmt.Errorf("secret key: seed_sk: %w", err)
	}
	seedPK, err := hex.DecodeString(r.SeedPK)
	if err != nil {
		return nil, fmt.Errorf("secret key: seed_pk: %w", err)
	}
	s, err := rowsMatrix(r.S)
	if err != nil {
		return nil, fmt.Errorf("secret key: S: %w", err)
	}
	cPrime, err := rowsMatrix(r.CPrime)
	if err != nil {
		return nil, fmt.Errorf("secret key: C_prime: %w", err)
	}
	sk := &SecretKey{SeedSK: seedSK, SeedPK: seedPK, S: s, CPrime: cPrime, Params: params}
	if err := sk.checkDims(); err != nil {
		return nil, err
	}
	return sk, nil
}

// Record converts a signature to its wire form.
func (sig *Signature) Record() *SignatureRecord {
	commitments := make([]string, len(sig.Commitments))
	for i, c := range sig.Commitments {
		commitments[i] = hex.EncodeToString(c)
	}
	proofs := make([]ProofRecord, len(sig.Proofs))
	for i, p := range sig.Proofs {
		opened := make([]string, len(p.OpenedSeeds))
		for j, s := range p.OpenedSeeds {
			opened[j] = hex.EncodeToString(s)
		}
		proofs[i] = ProofRecord{
			EvalPoint:   p.EvalPoint,
			OpenedSeeds: opened,
			Auxiliary:   AuxiliaryRecord{SAux: matrixRows(p.Aux.SAux), CAux: matrixRows(p.Aux.CAux)},
		}
	}
	return &SignatureRecord{
		Salt:        hex.EncodeToString(sig.Salt),
		MessageHash: hex.EncodeToString(sig.MessageHash),
		Commitments: commitments,
		ProofData:   proofs,
		HChallenge:  hex.EncodeToString(sig.HChallenge),
	}
}

// Signature rebuilds a signature from its wire form. Structural validity
// beyond decodability is the verifier's job.
func (r *SignatureRecord) Signature() (*Signature, error) {
	salt, err := hex.DecodeString(r.Salt)
	if err != nil {
		return nil, fmt.Errorf("signature: salt: %w", err)
	}
	messageHash, err := hex.DecodeString(r.MessageHash)
	if err != nil {
		return nil, fmt.Errorf("signature: message_hash: %w", err)
	}
	hChallenge, err := hex.DecodeString(r.HChallenge)
	if err != nil {
		return nil, fmt.Errorf("signature: h_challenge: %w", err)
	}
	commitments := make([][]byte, len(r.Commitments))
	for i, c := range r.Commitments {
		if commitments[i], err = hex.DecodeString(c); err != nil {
			return nil, fmt.Errorf("signature: commitment %d: %w", i, err)
		}
	}
	proofs := make([]RepetitionProof, len(r.ProofData))
	for i, p := range r.ProofData {
		opened := make([][]byte, len(p.OpenedSeeds))
		for j, s := range p.OpenedSeeds {
			if opened[j], err = hex.DecodeString(s); err != nil {
				return nil, fmt.Errorf("signature: proof %d seed %d: %w", i, j, err)
			}
		}
		sAux, err := rowsMatrix(p.Auxiliary.SAux)
		if err != nil {
			return nil, fmt.Errorf("signature: proof %d S_aux: %w", i, err)
		}
		cAux, err := rowsMatrix(p.Auxiliary.CAux)
		if err != nil {
			return nil, fmt.Errorf("signature: proof %d C_aux: %w", i, err)
		}
		proofs[i] = RepetitionProof{
			EvalPoint:   p.EvalPoint,
			OpenedSeeds: opened,
			Aux:         Auxiliary{SAux: sAux, CAux: cAux},
		}
	}
	return &Signature{
		Salt:        salt,
		MessageHash: messageHash,
		Commitments: commitments,
		Proofs:      proofs,
		HChallenge:  hChallenge,
	}, nil
}

// VerifyRecord decodes a signature record and verifies it. Undecodable
// records reject with the malformed reason rather than surfacing an error:
// hostile input never crosses the verification boundary as a fault.
func VerifyRecord(message string, rec *SignatureRecord, pk *PublicKey) (bool, Reason) {
	if rec == nil {
		return false, ReasonMalformedSignature
	}
	sig, err := rec.Signature()
	if err != nil {
		return false, ReasonMalformedSignature
	}
	return Verify(message, sig, pk)
}

// SavePublicKey writes the public key record to path as indented JSON.
func SavePublicKey(path string, pk *PublicKey) error {
	return saveJSON(path, pk.Record(), "mirath/public_key/json_file")
}

// LoadPublicKey reads a public key record from path.
func LoadPublicKey(path string) (*PublicKey, error) {
	var rec PublicKeyRecord
	if err := loadJSON(path, &rec); err != nil {
		return nil, err
	}
	return rec.Key()
}

// SaveSecretKey writes the secret key record to path. The file must stay in
// the signer's custody.
func SaveSecretKey(path string, sk *SecretKey) error {
	return saveJSON(path, sk.Record(), "mirath/secret_key/json_file")
}

// LoadSecretKey reads a secret key record from path under the given
// parameters.
func LoadSecretKey(path string, params Params) (*SecretKey, error) {
	var rec SecretKeyRecord
	if err := loadJSON(path, &rec); err != nil {
		return nil, err
	}
	return rec.Key(params)
}

func saveJSON(path string, v any, sizeKey string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if measure.Enabled {
		if info, err := os.Stat(path); err == nil {
			measure.Global.Add(sizeKey, info.Size())
		}
	}
	return nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func matrixRows(m *gf2.Matrix) [][]int {
	out := make([][]int, m.Rows)
	for i := 0; i < m.Rows; i++ {
		row := make([]int, m.Cols)
		for j := 0; j < m.Cols; j++ {
			row[j] = int(m.At(i, j))
		}
		out[i] = row
	}
	return out
}

func rowsMatrix(rows [][]int) (*gf2.Matrix, error) {
	conv := make([][]uint8, len(rows))
	for i, row := range rows {
		conv[i] = make([]uint8, len(row))
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("entry (%d,%d)=%d not in GF(2)", i, j, v)
			}
			conv[i][j] = uint8(v)
		}
	}
	return gf2.FromRows(conv)
}

func vecInts(v []uint8) []int {
	out := make([]int, len(v))
	for i, b := range v {
		out[i] = int(b)
	}
	return out
}

func intsVec(v []int) ([]uint8, error) {
	out := make([]uint8, len(v))
	for i, b := range v {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("entry %d=%d not in GF(2)", i, b)
		}
		out[i] = uint8(b)
	}
	return out, nil
}
