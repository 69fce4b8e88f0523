// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive a run.
//
// Both address-family flags being set is rejected here even though
// [models.ResolveAddressFamily] resolves that combination deterministically.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.KE.Host) == "" {
		return ErrMissingHost
	}

	if cfg.KE.IPv4 && cfg.KE.IPv6 {
		return ErrConflictingAddressFamily
	}

	if cfg.KE.Port != "" {
		port, err := strconv.Atoi(cfg.KE.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: %q", ErrInvalidPort, cfg.KE.Port)
		}
	}

	if cfg.KE.Timeout < 0 || cfg.NTP.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	return nil
}
