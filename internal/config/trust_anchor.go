// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

const pemCertificateType = "CERTIFICATE"

// LoadTrustAnchor reads the PEM bundle at path and returns its first
// certificate. Any further certificates in the bundle are ignored.
//
// An empty path is not an error and yields a nil certificate. A missing
// or unreadable file wraps [ErrTrustAnchorUnreadable]; a bundle without
// any CERTIFICATE block returns [ErrNoCertificates].
func LoadTrustAnchor(path string) (*x509.Certificate, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrustAnchorUnreadable, err)
	}

	for rest := data; len(rest) > 0; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != pemCertificateType {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTrustAnchorUnreadable, path, err)
		}
		return cert, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoCertificates, path)
}
