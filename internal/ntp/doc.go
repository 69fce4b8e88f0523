// Package ntp implements an NTS-protected NTPv4 client (RFC 8915, section 5).
//
// The exchange itself is delegated to github.com/beevik/ntp; this package
// plugs an Extension into it that adds the Unique Identifier, NTS Cookie
// and NTS Authenticator extension fields to the request and verifies them
// in the response with AEAD_AES_SIV_CMAC_256.
package ntp
