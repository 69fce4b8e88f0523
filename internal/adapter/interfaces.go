// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the capability boundary between the client
// orchestrator and the two NTS protocol phases.
//
// The primary abstraction is [ServerAdapter], which lets the orchestrator
// sequence key establishment and time synchronization without knowing how
// either is carried out. The package ships one implementation,
// [NewNTSServerAdapter], backed by internal/ntske and internal/ntp.
//
// Failures are classified by errorReason so that log entries carry a short
// machine-readable reason next to the wrapped error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter performs the two phases of an NTS run.
type ServerAdapter interface {
	// EstablishKeys runs NTS-KE against the server described by cfg and
	// returns the negotiated keys, cookies and NTP endpoint.
	EstablishKeys(ctx context.Context, cfg config.ClientConfig) (models.NegotiatedState, error)

	// SyncTime performs one authenticated NTP exchange using state, which
	// must come unmodified from EstablishKeys.
	SyncTime(ctx context.Context, state models.NegotiatedState) (models.TimeSyncResult, error)
}

// KeyExchanger is the NTS-KE protocol client used by the NTS adapter.
type KeyExchanger interface {
	Exchange(ctx context.Context, cfg config.ClientConfig) (models.NegotiatedState, error)
}

// TimeSynchronizer is the NTS-protected NTP client used by the NTS adapter.
type TimeSynchronizer interface {
	Sync(ctx context.Context, state models.NegotiatedState) (models.TimeSyncResult, error)
}
