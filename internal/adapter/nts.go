package adapter

import (
	"context"

	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/internal/ntp"
	"github.com/MKhiriev/go-nts-client/internal/ntske"
	"github.com/MKhiriev/go-nts-client/models"
	"github.com/rs/zerolog"
)

// Phase labels attached to the log entries of each exchange.
const (
	phaseKeyEstablishment = "ke"
	phaseTimeSync         = "ntp"
)

type ntsServerAdapter struct {
	keyExchanger     KeyExchanger
	timeSynchronizer TimeSynchronizer
}

// NewNTSServerAdapter constructs the [ServerAdapter] that speaks NTS-KE
// over TLS and NTS-protected NTPv4 over UDP. Each phase is bounded by the
// matching timeout in adapterCfg.
func NewNTSServerAdapter(adapterCfg config.ClientAdapter) ServerAdapter {
	return NewServerAdapter(
		ntske.NewClient(adapterCfg.KETimeout),
		ntp.NewClient(adapterCfg.NTPTimeout),
	)
}

// NewServerAdapter builds a [ServerAdapter] from explicit protocol clients.
func NewServerAdapter(ke KeyExchanger, ts TimeSynchronizer) ServerAdapter {
	return &ntsServerAdapter{keyExchanger: ke, timeSynchronizer: ts}
}

// EstablishKeys implements [ServerAdapter].
func (a *ntsServerAdapter) EstablishKeys(ctx context.Context, cfg config.ClientConfig) (models.NegotiatedState, error) {
	ctx, log := withPhase(ctx, phaseKeyEstablishment)

	log.Info().
		Str("host", cfg.Host()).
		Str("port", cfg.Port()).
		Stringer("family", cfg.AddressFamily()).
		Msg("starting key establishment")

	state, err := a.keyExchanger.Exchange(ctx, cfg)
	if err != nil {
		log.Debug().Err(err).Str("reason", errorReason(err)).Msg("key establishment failed")
		return models.NegotiatedState{}, err
	}

	log.Info().Object("state", state).Msg("key establishment succeeded")
	return state, nil
}

// SyncTime implements [ServerAdapter].
func (a *ntsServerAdapter) SyncTime(ctx context.Context, state models.NegotiatedState) (models.TimeSyncResult, error) {
	ctx, log := withPhase(ctx, phaseTimeSync)

	log.Info().
		Str("server", state.NTPServer).
		Uint16("port", state.NTPPort).
		Msg("starting time synchronization")

	result, err := a.timeSynchronizer.Sync(ctx, state)
	if err != nil {
		log.Debug().Err(err).Str("reason", errorReason(err)).Msg("time synchronization failed")
		return models.TimeSyncResult{}, err
	}

	log.Info().
		Int("stratum", result.Stratum).
		Float64("offset", result.TimeDiff).
		Msg("time synchronization succeeded")
	return result, nil
}

// withPhase derives a child of the logger in ctx tagged with phase and
// returns it together with a ctx carrying it. The caller's logger is left
// untouched.
func withPhase(ctx context.Context, phase string) (context.Context, *logger.Logger) {
	log := logger.FromContext(ctx).GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("phase", phase)
	})
	return log.WithContext(ctx), log
}
