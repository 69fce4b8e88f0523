package ntp

import "errors"

// ErrTimeSync wraps every error returned by [Client.Sync].
var ErrTimeSync = errors.New("nts time sync failed")

var (
	// ErrUnauthenticated indicates a response without a valid NTS
	// Authenticator and Encrypted Extension Fields field.
	ErrUnauthenticated = errors.New("response is not authenticated")
	// ErrUniqueIDMismatch indicates a response whose Unique Identifier is
	// missing or differs from the one sent in the request.
	ErrUniqueIDMismatch = errors.New("unique identifier mismatch")
	// ErrNTSNAK indicates the server answered with the NTSN kiss code: it
	// could not use the cookie and a new NTS-KE exchange is needed.
	ErrNTSNAK = errors.New("server sent NTS negative acknowledgment")
	// ErrMissingCookie indicates the negotiated state carries no cookie.
	ErrMissingCookie = errors.New("no cookie available")
	// ErrUnsupportedAEAD indicates the negotiated AEAD algorithm is not
	// implemented.
	ErrUnsupportedAEAD = errors.New("unsupported aead algorithm")
	// ErrMalformedField indicates an extension field that cannot be decoded.
	ErrMalformedField = errors.New("malformed extension field")
)
