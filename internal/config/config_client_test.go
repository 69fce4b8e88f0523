package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-nts-client/internal/testkit"
	"github.com/MKhiriev/go-nts-client/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

func TestNewClientConfig(t *testing.T) {
	ca := testkit.NewCA(t, "anchor")

	cfg := NewClientConfig("nts.example.org", "4461", ca.Cert, models.ForceIPv6)

	assert.Equal(t, "nts.example.org", cfg.Host())
	assert.Equal(t, "4461", cfg.Port())
	assert.Same(t, ca.Cert, cfg.TrustedAnchor())
	assert.Equal(t, models.ForceIPv6, cfg.AddressFamily())
}

func TestGetSettings_NoCert(t *testing.T) {
	clearEnvVars(t)

	s, err := GetSettings([]string{"nts.example.org"})

	require.NoError(t, err)
	assert.Equal(t, "nts.example.org", s.Client.Host())
	assert.Empty(t, s.Client.Port())
	assert.Nil(t, s.Client.TrustedAnchor())
	assert.Equal(t, models.NoPreference, s.Client.AddressFamily())
	assert.Empty(t, s.Warnings)
	assert.Equal(t, DefaultKETimeout, s.Adapter.KETimeout)
	assert.Equal(t, DefaultNTPTimeout, s.Adapter.NTPTimeout)
	assert.Equal(t, zerolog.WarnLevel, s.Log.Level)
}

func TestGetSettings_CertBundleUsesFirst(t *testing.T) {
	clearEnvVars(t)
	first := testkit.NewCA(t, "first")
	second := testkit.NewCA(t, "second")
	third := testkit.NewCA(t, "third")
	bundle := testkit.WriteBundle(t, first.Cert, second.Cert, third.Cert)

	s, err := GetSettings([]string{"-cert", bundle, "-ipv4", "-port", "4460", "nts.example.org"})

	require.NoError(t, err)
	require.NotNil(t, s.Client.TrustedAnchor())
	assert.True(t, s.Client.TrustedAnchor().Equal(first.Cert))
	assert.Equal(t, models.ForceIPv4, s.Client.AddressFamily())
	assert.Equal(t, "4460", s.Client.Port())
}

// TestGetSettings_MissingCertIsNotFatal documents the default behavior: an
// unreadable bundle leaves the anchor absent and is reported as a warning.
func TestGetSettings_MissingCertIsNotFatal(t *testing.T) {
	clearEnvVars(t)
	missing := filepath.Join(t.TempDir(), "missing.pem")

	s, err := GetSettings([]string{"-cert", missing, "nts.example.org"})

	require.NoError(t, err)
	assert.Nil(t, s.Client.TrustedAnchor())
	require.Len(t, s.Warnings, 1)
	assert.ErrorIs(t, s.Warnings[0], ErrTrustAnchorUnreadable)
}

func TestGetSettings_MissingCertStrictIsFatal(t *testing.T) {
	clearEnvVars(t)
	missing := filepath.Join(t.TempDir(), "missing.pem")

	s, err := GetSettings([]string{"-cert", missing, "-strict-cert", "nts.example.org"})

	require.ErrorIs(t, err, ErrTrustAnchorUnreadable)
	assert.Nil(t, s)
}

func TestGetSettings_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NTS_HOST":        "env.example.org",
		"NTS_IPV6":        "true",
		"NTS_NTP_TIMEOUT": "750ms",
		"NTS_LOG_LEVEL":   "debug",
	})

	s, err := GetSettings(nil)

	require.NoError(t, err)
	assert.Equal(t, "env.example.org", s.Client.Host())
	assert.Equal(t, models.ForceIPv6, s.Client.AddressFamily())
	assert.Equal(t, 750*time.Millisecond, s.Adapter.NTPTimeout)
	assert.Equal(t, zerolog.DebugLevel, s.Log.Level)
}

func TestGetSettings_InvalidConfig(t *testing.T) {
	clearEnvVars(t)

	s, err := GetSettings([]string{"-ipv4", "-ipv6", "nts.example.org"})

	require.ErrorIs(t, err, ErrConflictingAddressFamily)
	assert.Nil(t, s)
}
