// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the nts
// client binary and its orchestrator.
//
// The Msg* constants prefix the one-line diagnostics written to stderr when
// a run fails; the Report* constants are the formats of the report written
// to stdout on success. Keeping them in one place keeps the wording stable
// for scripts that parse the output.
package app

const (
	// MsgKEStageFailed prefixes the diagnostic of a failed NTS-KE phase.
	MsgKEStageFailed = "failure of tls stage"

	// MsgNTPStageFailed prefixes the diagnostic of a failed NTP phase.
	MsgNTPStageFailed = "failure of client"

	// MsgInvalidConfiguration prefixes the diagnostic printed when the
	// configuration cannot be loaded or validated.
	MsgInvalidConfiguration = "invalid configuration"
)

const (
	// ReportStratum is the first report line.
	ReportStratum = "stratum: %d\n"

	// ReportOffset is the second report line: the signed clock offset in
	// seconds with six fractional digits.
	ReportOffset = "offset: %.6f\n"
)
