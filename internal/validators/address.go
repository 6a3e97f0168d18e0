// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package validators

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// PublicKeyLength is the raw byte length of a Solana public key.
const PublicKeyLength = 32

// Address parses a caller-supplied base58 address, naming the request field
// it came from. The returned error is an [*AddressError] for that field
// whenever value is not valid base58 of exactly 32 bytes.
//
// All request fields share this single entry point so every malformed
// address produces the same error shape regardless of endpoint.
func Address(field, value string) (solana.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return solana.PublicKey{}, &AddressError{Field: field}
	}

	if len(decoded) != PublicKeyLength {
		return solana.PublicKey{}, &AddressError{Field: field}
	}

	return solana.PublicKeyFromBytes(decoded), nil
}
