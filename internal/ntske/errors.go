package ntske

import (
	"errors"
	"fmt"
)

// ErrKeyEstablishment wraps every error returned by [Client.Exchange].
var ErrKeyEstablishment = errors.New("nts-ke failed")

var (
	// ErrALPN indicates the server did not agree on the ntske/1 protocol.
	ErrALPN = errors.New("server did not negotiate ntske/1")
	// ErrUnsupportedProtocol indicates the server refused NTPv4.
	ErrUnsupportedProtocol = errors.New("server does not support NTPv4")
	// ErrUnsupportedAEAD indicates the server picked an AEAD algorithm this
	// client cannot use.
	ErrUnsupportedAEAD = errors.New("unsupported aead algorithm")
	// ErrNoCookies indicates the response carried no New Cookie record.
	ErrNoCookies = errors.New("server sent no cookies")
	// ErrBadRecord indicates a malformed, missing or unexpected record.
	ErrBadRecord = errors.New("bad nts-ke record")
)

// NTS-KE error codes (RFC 8915, section 4.1.3).
const (
	ErrorCodeUnrecognizedCritical uint16 = 0
	ErrorCodeBadRequest           uint16 = 1
	ErrorCodeInternalServerError  uint16 = 2
)

// ServerError is an Error record received from the NTS-KE server.
type ServerError struct {
	Code uint16
}

func (e *ServerError) Error() string {
	switch e.Code {
	case ErrorCodeUnrecognizedCritical:
		return "server error: unrecognized critical record"
	case ErrorCodeBadRequest:
		return "server error: bad request"
	case ErrorCodeInternalServerError:
		return "server error: internal server error"
	default:
		return fmt.Sprintf("server error: code %d", e.Code)
	}
}
