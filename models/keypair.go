package models

// Keypair is the payload returned by POST /keypair.
//
// The secret is the 32-byte Ed25519 seed, base58-encoded. The embedded
// public-key half of the raw 64-byte representation is deliberately not
// exported; callers re-derive it from the seed when importing the key.
type Keypair struct {
	// Pubkey is the base58-encoded public key (the on-chain address).
	Pubkey string `json:"pubkey"`

	// Secret is the base58-encoded 32-byte seed of the private key.
	Secret string `json:"secret"`
}
