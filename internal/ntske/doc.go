// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ntske implements the client side of NTS Key Establishment
// (RFC 8915, section 4).
//
// [Client.Exchange] opens a TLS 1.3 connection with ALPN "ntske/1",
// requests NTPv4 protected by AEAD_AES_SIV_CMAC_256, collects the cookies
// and the NTP endpoint sent by the server, and exports the two AEAD keys
// from the TLS session. The result is a [models.NegotiatedState] consumed by
// the NTP phase.
package ntske
