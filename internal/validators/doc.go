// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

// Package validators provides input validation for caller-supplied values.
//
// Its single concern today is Solana address validation: every base58 string
// accepted from a request must decode to exactly 32 bytes before an
// instruction is built from it. Validation errors carry the name of the
// offending request field so handlers can report it verbatim.
package validators
