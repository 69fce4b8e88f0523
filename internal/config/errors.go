package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingHost indicates that no NTS-KE host was given.
	ErrMissingHost = errors.New("nts-ke host is required")
	// ErrConflictingAddressFamily indicates that both IPv4 and IPv6 were forced.
	ErrConflictingAddressFamily = errors.New("ipv4 and ipv6 are mutually exclusive")
	// ErrInvalidPort indicates a port that is not a number in 1..65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidTimeout indicates a negative timeout.
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrUnexpectedArguments indicates extra positional arguments.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)

// Trust anchor errors returned by [LoadTrustAnchor].
var (
	// ErrTrustAnchorUnreadable indicates that the bundle could not be read
	// or that its first certificate could not be parsed.
	ErrTrustAnchorUnreadable = errors.New("trust anchor bundle unreadable")
	// ErrNoCertificates indicates a bundle without any PEM certificate.
	ErrNoCertificates = errors.New("no certificates in trust anchor bundle")
)
