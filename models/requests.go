package models

// CreateTokenRequest is the body of POST /token/create.
type CreateTokenRequest struct {
	// MintAuthority is the base58 address allowed to mint new supply.
	MintAuthority string `json:"mintAuthority"`

	// Mint is the base58 address of the mint account being initialized.
	Mint string `json:"mint"`

	// Decimals is the number of base-10 digits to the right of the decimal
	// place. Passed to the token program as given.
	Decimals uint8 `json:"decimals"`
}

// MintTokenRequest is the body of POST /token/mint.
type MintTokenRequest struct {
	// Mint is the base58 address of the mint to issue tokens from.
	Mint string `json:"mint"`

	// Destination is the base58 address of the receiving token account.
	Destination string `json:"destination"`

	// Authority is the base58 address of the minting authority.
	Authority string `json:"authority"`

	// Amount is the number of base units to mint. Zero is allowed.
	Amount uint64 `json:"amount"`
}
