// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ntp

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	beevikntp "github.com/beevik/ntp"

	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/models"
)

// DefaultTimeout is used when the client is built with a zero timeout.
const DefaultTimeout = 5 * time.Second

// Client performs one NTS-protected NTP exchange per call.
type Client struct {
	timeout time.Duration
	rand    io.Reader
}

// NewClient constructs a [Client] that waits at most timeout for the
// server's response.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		timeout: timeout,
		rand:    rand.Reader,
	}
}

// Sync queries the NTP server recorded in state, authenticating the
// exchange with the negotiated keys and the first cookie. All errors wrap
// [ErrTimeSync].
func (c *Client) Sync(ctx context.Context, state models.NegotiatedState) (models.TimeSyncResult, error) {
	result, err := c.sync(ctx, state)
	if err != nil {
		return models.TimeSyncResult{}, fmt.Errorf("%w: %w", ErrTimeSync, err)
	}
	return result, nil
}

func (c *Client) sync(ctx context.Context, state models.NegotiatedState) (models.TimeSyncResult, error) {
	log := logger.FromContext(ctx)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return models.TimeSyncResult{}, context.DeadlineExceeded
	}

	ext, err := newExtension(state, c.rand)
	if err != nil {
		return models.TimeSyncResult{}, err
	}

	address := net.JoinHostPort(state.NTPServer, strconv.Itoa(int(state.NTPPort)))
	network := state.AddressFamily.Network("udp")

	log.Debug().
		Str("address", address).
		Str("network", network).
		Dur("timeout", timeout).
		Msg("querying ntp server")

	resp, err := beevikntp.QueryWithOptions(address, beevikntp.QueryOptions{
		Timeout:    timeout,
		Extensions: []beevikntp.Extension{ext},
		Dialer: func(_, remoteAddress string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, remoteAddress)
		},
	})
	if err != nil {
		return models.TimeSyncResult{}, err
	}

	// An NTS NAK never gets here: the extension rejects it while
	// processing the response.
	if err = resp.Validate(); err != nil {
		return models.TimeSyncResult{}, fmt.Errorf("invalid response: %w", err)
	}

	result := models.TimeSyncResult{
		Stratum:      int(resp.Stratum),
		TimeDiff:     resp.ClockOffset.Seconds(),
		RTT:          resp.RTT,
		FreshCookies: len(ext.freshCookies),
	}

	log.Debug().
		Int("stratum", result.Stratum).
		Float64("offset", result.TimeDiff).
		Dur("rtt", result.RTT).
		Int("fresh_cookies", result.FreshCookies).
		Msg("ntp exchange complete")

	return result, nil
}
