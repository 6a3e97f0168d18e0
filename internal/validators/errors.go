// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package validators

import "fmt"

// AddressError reports that a request field did not contain a valid base58
// public key. Field holds the JSON field name as the caller sent it, so the
// message can be returned to the caller unchanged.
type AddressError struct {
	Field string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("Invalid base58 string for %s.", e.Field)
}
