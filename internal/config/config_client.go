package config

import (
	"crypto/x509"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nts-client/models"
	"github.com/rs/zerolog"
)

// ClientConfig is the immutable input of the NTS-KE phase. It is built
// only by [NewClientConfig] and exposes its fields through getters.
type ClientConfig struct {
	host          string
	port          string
	trustedAnchor *x509.Certificate
	addressFamily models.AddressFamily
}

// NewClientConfig combines the resolved values into a [ClientConfig].
// It performs no I/O and cannot fail.
func NewClientConfig(host, port string, trustedAnchor *x509.Certificate, family models.AddressFamily) ClientConfig {
	return ClientConfig{
		host:          host,
		port:          port,
		trustedAnchor: trustedAnchor,
		addressFamily: family,
	}
}

// Host returns the NTS-KE server host.
func (c ClientConfig) Host() string {
	return c.host
}

// Port returns the NTS-KE port override, or "" when none was given.
func (c ClientConfig) Port() string {
	return c.port
}

// TrustedAnchor returns the extra trusted root, or nil.
func (c ClientConfig) TrustedAnchor() *x509.Certificate {
	return c.trustedAnchor
}

// AddressFamily returns the address-family preference of the run.
func (c ClientConfig) AddressFamily() models.AddressFamily {
	return c.addressFamily
}

// ClientAdapter holds the collaborator timeouts.
type ClientAdapter struct {
	// KETimeout bounds the NTS-KE exchange.
	KETimeout time.Duration
	// NTPTimeout bounds the wait for the NTP response.
	NTPTimeout time.Duration
}

// ClientLog holds the resolved logging settings.
type ClientLog struct {
	Level zerolog.Level
}

// Settings is everything the client binary needs for one run.
type Settings struct {
	// Client is the NTS-KE input.
	Client ClientConfig
	// Adapter holds the collaborator settings.
	Adapter ClientAdapter
	// Log holds logging settings.
	Log ClientLog
	// Warnings are non-fatal problems found while loading the settings,
	// such as an unreadable trust anchor bundle outside strict mode. They
	// are logged once a logger exists.
	Warnings []error
}

// GetSettings builds the run settings from args (without the program name),
// the environment and the optional configuration file.
//
// A trust anchor that cannot be loaded is reported in Settings.Warnings and
// the run proceeds without it, unless strict mode is enabled, in which case
// the error is returned.
func GetSettings(args []string) (*Settings, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.settings()
}

func (cfg *StructuredConfig) settings() (*Settings, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	s := &Settings{
		Adapter: ClientAdapter{
			KETimeout:  cfg.KE.Timeout,
			NTPTimeout: cfg.NTP.Timeout,
		},
		Log: ClientLog{Level: level},
	}

	anchor, err := LoadTrustAnchor(cfg.KE.CertFile)
	if err != nil {
		if cfg.KE.StrictCert {
			return nil, err
		}
		s.Warnings = append(s.Warnings, err)
		anchor = nil
	}

	family := models.ResolveAddressFamily(cfg.KE.IPv4, cfg.KE.IPv6)
	s.Client = NewClientConfig(cfg.KE.Host, cfg.KE.Port, anchor, family)

	return s, nil
}
