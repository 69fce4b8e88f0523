// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ntske

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/models"
)

const (
	// DefaultPort is the IANA port of NTS-KE.
	DefaultPort = "4460"
	// DefaultNTPPort is used when the server sends no Port Negotiation record.
	DefaultNTPPort uint16 = 123
	// ALPN is the TLS application protocol of NTS-KE.
	ALPN = "ntske/1"

	exporterLabel = "EXPORTER-network-time-security"
	keyLength     = 32

	directionC2S byte = 0x00
	directionS2C byte = 0x01
)

// Client performs NTS-KE exchanges.
type Client struct {
	timeout time.Duration
	dialer  *net.Dialer
}

// NewClient constructs a [Client]. timeout bounds a whole exchange: dial,
// handshake and record exchange. Zero means no limit beyond ctx.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		timeout: timeout,
		dialer:  &net.Dialer{},
	}
}

// Exchange connects to the NTS-KE server described by cfg, negotiates
// NTPv4 with AEAD_AES_SIV_CMAC_256 and returns the keys, cookies and NTP
// endpoint to use. All errors wrap [ErrKeyEstablishment].
func (c *Client) Exchange(ctx context.Context, cfg config.ClientConfig) (models.NegotiatedState, error) {
	state, err := c.exchange(ctx, cfg)
	if err != nil {
		return models.NegotiatedState{}, fmt.Errorf("%w: %w", ErrKeyEstablishment, err)
	}
	return state, nil
}

func (c *Client) exchange(ctx context.Context, cfg config.ClientConfig) (models.NegotiatedState, error) {
	log := logger.FromContext(ctx)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tlsConfig, err := newTLSConfig(cfg)
	if err != nil {
		return models.NegotiatedState{}, err
	}

	port := cfg.Port()
	if port == "" {
		port = DefaultPort
	}
	address := net.JoinHostPort(cfg.Host(), port)
	network := cfg.AddressFamily().Network("tcp")

	log.Debug().
		Str("address", address).
		Str("network", network).
		Bool("trust_anchor", cfg.TrustedAnchor() != nil).
		Msg("connecting to nts-ke server")

	tlsDialer := &tls.Dialer{NetDialer: c.dialer, Config: tlsConfig}
	rawConn, err := tlsDialer.DialContext(ctx, network, address)
	if err != nil {
		return models.NegotiatedState{}, fmt.Errorf("dial %s: %w", address, err)
	}
	conn := rawConn.(*tls.Conn)
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return models.NegotiatedState{}, fmt.Errorf("set deadline: %w", err)
		}
	}

	cs := conn.ConnectionState()
	if cs.NegotiatedProtocol != ALPN {
		return models.NegotiatedState{}, fmt.Errorf("%w: got %q", ErrALPN, cs.NegotiatedProtocol)
	}

	request, err := clientRequest()
	if err != nil {
		return models.NegotiatedState{}, fmt.Errorf("build request: %w", err)
	}
	if _, err = conn.Write(request); err != nil {
		return models.NegotiatedState{}, fmt.Errorf("write request: %w", err)
	}

	resp, err := readResponse(ctx, conn)
	if err != nil {
		return models.NegotiatedState{}, err
	}

	c2s, s2c, err := exportKeys(cs, resp.protocol, resp.aead)
	if err != nil {
		return models.NegotiatedState{}, err
	}

	state := models.NegotiatedState{
		C2SKey:        c2s,
		S2CKey:        s2c,
		AEADAlgorithm: resp.aead,
		Cookies:       resp.cookies,
		NTPServer:     resp.server,
		NTPPort:       resp.port,
		AddressFamily: cfg.AddressFamily(),
	}
	if state.NTPServer == "" {
		state.NTPServer = cfg.Host()
	}
	if state.NTPPort == 0 {
		state.NTPPort = DefaultNTPPort
	}

	log.Debug().Object("state", state).Msg("nts-ke exchange complete")

	return state, nil
}

func newTLSConfig(cfg config.ClientConfig) (*tls.Config, error) {
	roots, err := x509.SystemCertPool()
	if err != nil {
		roots = x509.NewCertPool()
	}
	if anchor := cfg.TrustedAnchor(); anchor != nil {
		roots.AddCert(anchor)
	}

	return &tls.Config{
		ServerName: cfg.Host(),
		RootCAs:    roots,
		NextProtos: []string{ALPN},
		MinVersion: tls.VersionTLS13,
	}, nil
}

type response struct {
	protocol uint16
	aead     uint16
	cookies  [][]byte
	server   string
	port     uint16
}

// readResponse reads records until End of Message and validates that the
// server agreed on NTPv4 and AEAD_AES_SIV_CMAC_256.
func readResponse(ctx context.Context, conn net.Conn) (response, error) {
	log := logger.FromContext(ctx)

	var (
		resp         response
		seenProtocol bool
		seenAEAD     bool
	)

	for {
		rec, err := readRecord(conn)
		if err != nil {
			return response{}, err
		}

		switch rec.typ {
		case recordEndOfMessage:
			if !seenProtocol {
				return response{}, fmt.Errorf("%w: missing next protocol record", ErrBadRecord)
			}
			if !seenAEAD {
				return response{}, fmt.Errorf("%w: missing aead record", ErrBadRecord)
			}
			if len(resp.cookies) == 0 {
				return response{}, ErrNoCookies
			}
			return resp, nil

		case recordNextProtocol:
			protocols, err := parseUint16List(rec.body)
			if err != nil {
				return response{}, err
			}
			if len(protocols) != 1 || protocols[0] != ProtocolNTPv4 {
				return response{}, fmt.Errorf("%w: %v", ErrUnsupportedProtocol, protocols)
			}
			resp.protocol = protocols[0]
			seenProtocol = true

		case recordError:
			code, err := parseUint16(rec.body)
			if err != nil {
				return response{}, err
			}
			return response{}, &ServerError{Code: code}

		case recordWarning:
			code, err := parseUint16(rec.body)
			if err != nil {
				return response{}, err
			}
			log.Warn().Uint16("code", code).Msg("nts-ke server sent a warning")

		case recordAEADAlgorithm:
			aead, err := parseUint16(rec.body)
			if err != nil {
				return response{}, err
			}
			if aead != AEADAESSIVCMAC256 {
				return response{}, fmt.Errorf("%w: %d", ErrUnsupportedAEAD, aead)
			}
			resp.aead = aead
			seenAEAD = true

		case recordNewCookie:
			resp.cookies = append(resp.cookies, bytes.Clone(rec.body))

		case recordServer:
			if len(rec.body) == 0 {
				return response{}, fmt.Errorf("%w: empty server record", ErrBadRecord)
			}
			resp.server = string(rec.body)

		case recordPort:
			port, err := parseUint16(rec.body)
			if err != nil {
				return response{}, err
			}
			resp.port = port

		default:
			if rec.critical {
				return response{}, fmt.Errorf("%w: unrecognized critical record type %d", ErrBadRecord, rec.typ)
			}
			log.Debug().Uint16("type", rec.typ).Msg("ignoring unknown nts-ke record")
		}
	}
}

// exportKeys derives the C2S and S2C keys from the TLS session
// (RFC 8915, section 5.1).
func exportKeys(cs tls.ConnectionState, protocol, aead uint16) (c2s, s2c []byte, err error) {
	exporterContext := func(direction byte) []byte {
		return []byte{
			byte(protocol >> 8), byte(protocol),
			byte(aead >> 8), byte(aead),
			direction,
		}
	}

	c2s, err = cs.ExportKeyingMaterial(exporterLabel, exporterContext(directionC2S), keyLength)
	if err != nil {
		return nil, nil, fmt.Errorf("export c2s key: %w", err)
	}
	s2c, err = cs.ExportKeyingMaterial(exporterLabel, exporterContext(directionS2C), keyLength)
	if err != nil {
		return nil, nil, fmt.Errorf("export s2c key: %w", err)
	}

	return c2s, s2c, nil
}
