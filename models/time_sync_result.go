package models

import "time"

// TimeSyncResult is the outcome of one authenticated NTP exchange.
type TimeSyncResult struct {
	// Stratum reported by the server.
	Stratum int
	// TimeDiff is the estimated offset of the local clock relative to the
	// server, in seconds. Positive means the local clock is behind.
	TimeDiff float64
	// RTT is the measured round trip of the exchange.
	RTT time.Duration
	// FreshCookies is the number of replacement cookies the server sent.
	FreshCookies int
}
