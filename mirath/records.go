package mirath

// Wire records: the portable JSON shape of keys and signatures. Byte strings
// are hex encoded; matrices are nested 0/1 rows. The field layout is the
// external interface and must stay stable.

// ParamsRecord is the public subset of the parameters carried in a public
// key record. Tau, NSeeds and Lambda are scheme constants, not wire data.
type ParamsRecord struct {
	M int `json:"m"`
	N int `json:"n"`
	K int `json:"k"`
	R int `json:"r"`
}

// PublicKeyRecord is the persisted form of a public key.
type PublicKeyRecord struct {
	SeedPK string       `json:"seed_pk"`
	HPrime [][]int      `json:"H_prime"`
	Y      []int        `json:"y"`
	Params ParamsRecord `json:"params"`
}

// SecretKeyRecord is the persisted form of a secret key. It must never leave
// the signer's custody.
type SecretKeyRecord struct {
	SeedSK string  `json:"seed_sk"`
	SeedPK string  `json:"seed_pk"`
	S      [][]int `json:"S"`
	CPrime [][]int `json:"C_prime"`
}

// AuxiliaryRecord carries one repetition's masking matrices.
type AuxiliaryRecord struct {
	SAux [][]int `json:"S_aux"`
	CAux [][]int `json:"C_aux"`
}

// ProofRecord is one repetition's all-but-one opening.
type ProofRecord struct {
	EvalPoint   int             `json:"eval_point"`
	OpenedSeeds []string        `json:"opened_seeds"`
	Auxiliary   AuxiliaryRecord `json:"auxiliary"`
}

// SignatureRecord is the persisted form of a signature, embedded in the
// signed artifact.
type SignatureRecord struct {
	Salt        string        `json:"salt"`
	MessageHash string        `json:"message_hash"`
	Commitments []string      `json:"commitments"`
	ProofData   []ProofRecord `json:"proof_data"`
	HChallenge  string        `json:"h_challenge"`
}
