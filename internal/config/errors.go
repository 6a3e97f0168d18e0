// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package config

import "errors"

var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty bind host or an out-of-range port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
