// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package config

import (
	"net"
	"strconv"
)

// Default bind settings used when neither the environment, flags, nor the
// JSON file specify them.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// StructuredConfig is the top-level configuration container for the
// application. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file, read once at startup.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: SERVER_HOST. Defaults to all interfaces.
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: SERVER_PORT. Defaults to 8080.
	Port int `env:"PORT"`
}

// Address returns the bind address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source with a non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
