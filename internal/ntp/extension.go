// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ntp

import (
	"bytes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/MKhiriev/go-nts-client/models"
	"golang.org/x/crypto/cryptobyte"
)

// NTS extension field types (RFC 8915, section 5.7).
const (
	fieldUniqueIdentifier uint16 = 0x0104
	fieldCookie           uint16 = 0x0204
	fieldAuthenticator    uint16 = 0x0404
)

const (
	headerLength      = 48
	fieldHeaderLength = 4
	uniqueIDLength    = 32
	nonceLength       = 16
	maxFieldLength    = 0xffff

	kissCodeNTSNAK = "NTSN"
)

// extensionField is one decoded NTP extension field. offset is the position
// of the field header inside the packet.
type extensionField struct {
	typ    uint16
	body   []byte
	offset int
}

func padding(n int) int {
	return (4 - n%4) % 4
}

// addField appends an extension field padded to a multiple of four bytes.
func addField(b *cryptobyte.Builder, typ uint16, body []byte) {
	pad := padding(len(body))
	b.AddUint16(typ)
	b.AddUint16(uint16(fieldHeaderLength + len(body) + pad))
	b.AddBytes(body)
	b.AddBytes(make([]byte, pad))
}

// addAuthenticator appends the NTS Authenticator and Encrypted Extension
// Fields field carrying nonce and ciphertext.
func addAuthenticator(b *cryptobyte.Builder, nonce, ciphertext []byte) {
	var body cryptobyte.Builder
	body.AddUint16(uint16(len(nonce)))
	body.AddUint16(uint16(len(ciphertext)))
	body.AddBytes(nonce)
	body.AddBytes(make([]byte, padding(len(nonce))))
	body.AddBytes(ciphertext)
	body.AddBytes(make([]byte, padding(len(ciphertext))))
	addField(b, fieldAuthenticator, body.BytesOrPanic())
}

// parseFields decodes the extension fields of packet starting at from.
func parseFields(packet []byte, from int) ([]extensionField, error) {
	var fields []extensionField

	s := cryptobyte.String(packet[from:])
	for !s.Empty() {
		offset := len(packet) - len(s)

		var typ, length uint16
		var body []byte
		if !s.ReadUint16(&typ) || !s.ReadUint16(&length) {
			return nil, fmt.Errorf("%w: truncated header at %d", ErrMalformedField, offset)
		}
		if length < fieldHeaderLength || length%4 != 0 {
			return nil, fmt.Errorf("%w: bad length %d at %d", ErrMalformedField, length, offset)
		}
		if !s.ReadBytes(&body, int(length)-fieldHeaderLength) {
			return nil, fmt.Errorf("%w: truncated body at %d", ErrMalformedField, offset)
		}

		fields = append(fields, extensionField{typ: typ, body: body, offset: offset})
	}

	return fields, nil
}

// parseAuthenticator splits an authenticator body into nonce and ciphertext.
func parseAuthenticator(body []byte) (nonce, ciphertext []byte, err error) {
	s := cryptobyte.String(body)

	var nonceLen, ctLen uint16
	if !s.ReadUint16(&nonceLen) || !s.ReadUint16(&ctLen) ||
		!s.ReadBytes(&nonce, int(nonceLen)) || !s.Skip(padding(int(nonceLen))) ||
		!s.ReadBytes(&ciphertext, int(ctLen)) {
		return nil, nil, fmt.Errorf("%w: authenticator", ErrMalformedField)
	}

	return nonce, ciphertext, nil
}

// open verifies and decrypts an authenticator body with aead, using the
// bytes that precede the field as associated data.
func open(aead cipher.AEAD, body, ad []byte) ([]byte, error) {
	nonce, ciphertext, err := parseAuthenticator(body)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce length %d", ErrUnauthenticated, len(nonce))
	}

	// The AES-SIV assembly reads its inputs with aligned loads. Slices into
	// the received packet are not 16-byte aligned, so open fresh copies.
	plaintext, err := aead.Open(nil, bytes.Clone(nonce), bytes.Clone(ciphertext), bytes.Clone(ad))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return plaintext, nil
}

// extension implements the beevik/ntp Extension interface for NTS. It is
// good for a single query.
type extension struct {
	c2s    cipher.AEAD
	s2c    cipher.AEAD
	cookie []byte
	rand   io.Reader

	uniqueID     []byte
	freshCookies [][]byte
}

func newExtension(state models.NegotiatedState, rand io.Reader) (*extension, error) {
	if len(state.Cookies) == 0 {
		return nil, ErrMissingCookie
	}
	if fieldHeaderLength+len(state.Cookies[0])+padding(len(state.Cookies[0])) > maxFieldLength {
		return nil, fmt.Errorf("%w: cookie of %d bytes", ErrMalformedField, len(state.Cookies[0]))
	}

	c2s, err := newAEAD(state.AEADAlgorithm, state.C2SKey)
	if err != nil {
		return nil, fmt.Errorf("c2s key: %w", err)
	}
	s2c, err := newAEAD(state.AEADAlgorithm, state.S2CKey)
	if err != nil {
		return nil, fmt.Errorf("s2c key: %w", err)
	}

	return &extension{
		c2s:    c2s,
		s2c:    s2c,
		cookie: state.Cookies[0],
		rand:   rand,
	}, nil
}

// ProcessQuery appends the Unique Identifier, the cookie and the
// authenticator to the 48-byte header in buf. The authenticator covers
// everything written before it.
func (e *extension) ProcessQuery(buf *bytes.Buffer) error {
	e.uniqueID = make([]byte, uniqueIDLength)
	if _, err := io.ReadFull(e.rand, e.uniqueID); err != nil {
		return fmt.Errorf("generate unique identifier: %w", err)
	}
	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	var b cryptobyte.Builder
	addField(&b, fieldUniqueIdentifier, e.uniqueID)
	addField(&b, fieldCookie, e.cookie)
	fields, err := b.Bytes()
	if err != nil {
		return fmt.Errorf("encode extension fields: %w", err)
	}
	buf.Write(fields)

	ciphertext := e.c2s.Seal(nil, nonce, nil, buf.Bytes())

	var a cryptobyte.Builder
	addAuthenticator(&a, nonce, ciphertext)
	auth, err := a.Bytes()
	if err != nil {
		return fmt.Errorf("encode authenticator: %w", err)
	}
	buf.Write(auth)

	return nil
}

// ProcessResponse authenticates the whole response message. Fields after
// the authenticator are not covered by it and are ignored.
func (e *extension) ProcessResponse(msg []byte) error {
	if len(msg) < headerLength {
		return fmt.Errorf("%w: short packet", ErrUnauthenticated)
	}

	// An NTS NAK carries no authenticator.
	nak := msg[1] == 0 && string(msg[12:16]) == kissCodeNTSNAK

	fields, err := parseFields(msg, headerLength)
	if err != nil {
		return err
	}

	var seenUniqueID bool
	for _, f := range fields {
		switch f.typ {
		case fieldUniqueIdentifier:
			if !bytes.Equal(f.body, e.uniqueID) {
				return ErrUniqueIDMismatch
			}
			seenUniqueID = true
			if nak {
				return ErrNTSNAK
			}

		case fieldAuthenticator:
			if !seenUniqueID {
				return ErrUniqueIDMismatch
			}
			plaintext, err := open(e.s2c, f.body, msg[:f.offset])
			if err != nil {
				return err
			}
			return e.readEncryptedFields(plaintext)
		}
	}

	if nak {
		return ErrNTSNAK
	}
	if !seenUniqueID {
		return ErrUniqueIDMismatch
	}
	return ErrUnauthenticated
}

// readEncryptedFields collects the fresh cookies sent inside the
// authenticator.
func (e *extension) readEncryptedFields(plaintext []byte) error {
	fields, err := parseFields(plaintext, 0)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if f.typ == fieldCookie {
			e.freshCookies = append(e.freshCookies, bytes.Clone(f.body))
		}
	}
	return nil
}
