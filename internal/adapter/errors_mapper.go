package adapter

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/go-nts-client/internal/ntp"
	"github.com/MKhiriev/go-nts-client/internal/ntske"
)

// Failure reasons attached to adapter log entries.
const (
	ReasonTimeout          = "timeout"
	ReasonNetwork          = "network"
	ReasonServerError      = "ke_server_error"
	ReasonALPN             = "alpn"
	ReasonNegotiation      = "negotiation"
	ReasonNoCookies        = "no_cookies"
	ReasonMalformed        = "malformed"
	ReasonUnauthenticated  = "unauthenticated"
	ReasonUniqueIDMismatch = "unique_id_mismatch"
	ReasonNTSNAK           = "nts_nak"
	ReasonOther            = "other"
)

func errorReason(err error) string {
	var serverErr *ntske.ServerError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.As(err, &serverErr):
		return ReasonServerError
	case errors.Is(err, ntske.ErrALPN):
		return ReasonALPN
	case errors.Is(err, ntske.ErrUnsupportedProtocol),
		errors.Is(err, ntske.ErrUnsupportedAEAD),
		errors.Is(err, ntp.ErrUnsupportedAEAD):
		return ReasonNegotiation
	case errors.Is(err, ntske.ErrNoCookies), errors.Is(err, ntp.ErrMissingCookie):
		return ReasonNoCookies
	case errors.Is(err, ntske.ErrBadRecord), errors.Is(err, ntp.ErrMalformedField):
		return ReasonMalformed
	case errors.Is(err, ntp.ErrNTSNAK):
		return ReasonNTSNAK
	case errors.Is(err, ntp.ErrUniqueIDMismatch):
		return ReasonUniqueIDMismatch
	case errors.Is(err, ntp.ErrUnauthenticated):
		return ReasonUnauthenticated
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return ReasonTimeout
		}
		return ReasonNetwork
	default:
		return ReasonOther
	}
}
