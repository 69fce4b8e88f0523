// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied to settings that no source provided.
const (
	DefaultKETimeout  = 10 * time.Second
	DefaultNTPTimeout = 5 * time.Second
	DefaultLogLevel   = "warn"
)

// StructuredConfig is the raw configuration container of the nts client.
// It is populated from an optional configuration file, environment
// variables and command-line flags, then merged.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// KE holds the NTS-KE server endpoint and the trust and address-family
	// settings that shape the TLS phase.
	KE KE `envPrefix:"NTS_"`

	// NTP holds settings of the authenticated NTP exchange.
	NTP NTP `envPrefix:"NTS_NTP_"`

	// Log holds logging settings.
	Log Log `envPrefix:"NTS_LOG_"`

	// ConfigFile is the optional path to a JSON or YAML configuration file.
	// The format is chosen by extension (.yaml/.yml, anything else is JSON).
	// Env: NTS_CONFIG, flags: -c / -config.
	ConfigFile string `env:"NTS_CONFIG"`
}

// KE holds NTS-KE settings.
type KE struct {
	// Host is the NTS-KE server hostname or address. Required.
	// Env: NTS_HOST
	Host string `env:"HOST"`

	// Port overrides the NTS-KE port (4460 when empty).
	// Env: NTS_PORT
	Port string `env:"PORT"`

	// CertFile is the path to a PEM bundle whose first certificate is
	// added to the trusted roots.
	// Env: NTS_CERT
	CertFile string `env:"CERT"`

	// StrictCert turns an unreadable CertFile into a fatal error instead
	// of a warning.
	// Env: NTS_STRICT_CERT
	StrictCert bool `env:"STRICT_CERT"`

	// IPv4 forces IPv4 for all connections of the run.
	// Env: NTS_IPV4
	IPv4 bool `env:"IPV4"`

	// IPv6 forces IPv6 for all connections of the run.
	// Env: NTS_IPV6
	IPv6 bool `env:"IPV6"`

	// Timeout bounds the whole NTS-KE exchange (dial, handshake, records).
	// Env: NTS_KE_TIMEOUT
	Timeout time.Duration `env:"KE_TIMEOUT"`
}

// NTP holds settings of the NTP exchange.
type NTP struct {
	// Timeout is how long to wait for the NTP response.
	// Env: NTS_NTP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, ...).
	// Env: NTS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all
// available sources. Later sources override earlier non-zero fields:
//  1. configuration file (path resolved from sources 2 and 3)
//  2. environment variables
//  3. command-line flags (args, without the program name)
//
// Defaults are applied to fields that remain unset and the result is
// validated.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.KE.Timeout == 0 {
		cfg.KE.Timeout = DefaultKETimeout
	}
	if cfg.NTP.Timeout == 0 {
		cfg.NTP.Timeout = DefaultNTPTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
