// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/rs/zerolog"
)

// NegotiatedState is everything the NTS-KE phase hands over to the NTP
// phase: the exported AEAD keys, the cookies issued by the server and the
// NTP endpoint the server told us to contact.
//
// The value is produced once, passed to the NTP client once and never
// modified in between.
type NegotiatedState struct {
	// C2SKey authenticates client-to-server NTP requests.
	C2SKey []byte
	// S2CKey authenticates server-to-client NTP responses.
	S2CKey []byte
	// AEADAlgorithm is the IANA AEAD identifier agreed during NTS-KE
	// (15 = AEAD_AES_SIV_CMAC_256).
	AEADAlgorithm uint16
	// Cookies are opaque values to be echoed in NTS Cookie extension fields.
	Cookies [][]byte
	// NTPServer is the host of the NTP server, either negotiated or the
	// NTS-KE host itself.
	NTPServer string
	// NTPPort is the UDP port of the NTP server (123 unless negotiated).
	NTPPort uint16
	// AddressFamily carries the run's address-family preference to the
	// NTP phase.
	AddressFamily AddressFamily
}

// MarshalZerologObject logs the non-secret parts of the state. Keys and
// cookie contents are never written to logs.
func (s NegotiatedState) MarshalZerologObject(e *zerolog.Event) {
	e.Str("ntp_server", s.NTPServer).
		Uint16("ntp_port", s.NTPPort).
		Uint16("aead", s.AEADAlgorithm).
		Int("cookies", len(s.Cookies)).
		Stringer("family", s.AddressFamily)
}
