package ntske

import (
	"fmt"
	"io"

	"golang.org/x/crypto/cryptobyte"
)

// NTS-KE record types (RFC 8915, section 4).
const (
	recordEndOfMessage  uint16 = 0
	recordNextProtocol  uint16 = 1
	recordError         uint16 = 2
	recordWarning       uint16 = 3
	recordAEADAlgorithm uint16 = 4
	recordNewCookie     uint16 = 5
	recordServer        uint16 = 6
	recordPort          uint16 = 7

	recordCriticalBit uint16 = 0x8000
	recordTypeMask    uint16 = 0x7fff

	recordHeaderLength = 4
)

// Protocol and algorithm identifiers negotiated by this client.
const (
	// ProtocolNTPv4 is the NTS Next Protocol ID of NTPv4.
	ProtocolNTPv4 uint16 = 0
	// AEADAESSIVCMAC256 is the IANA id of AEAD_AES_SIV_CMAC_256.
	AEADAESSIVCMAC256 uint16 = 15
)

type record struct {
	critical bool
	typ      uint16
	body     []byte
}

func (r record) marshal(b *cryptobyte.Builder) {
	typ := r.typ & recordTypeMask
	if r.critical {
		typ |= recordCriticalBit
	}
	b.AddUint16(typ)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(r.body)
	})
}

func marshalRecords(records ...record) ([]byte, error) {
	var b cryptobyte.Builder
	for _, r := range records {
		r.marshal(&b)
	}
	return b.Bytes()
}

// readRecord reads one record from r.
func readRecord(r io.Reader) (record, error) {
	var hdr [recordHeaderLength]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return record{}, fmt.Errorf("read record header: %w", err)
	}

	var typ, length uint16
	s := cryptobyte.String(hdr[:])
	s.ReadUint16(&typ)
	s.ReadUint16(&length)

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return record{}, fmt.Errorf("read record body: %w", err)
	}

	return record{
		critical: typ&recordCriticalBit != 0,
		typ:      typ & recordTypeMask,
		body:     body,
	}, nil
}

func uint16Body(values ...uint16) []byte {
	var b cryptobyte.Builder
	for _, v := range values {
		b.AddUint16(v)
	}
	return b.BytesOrPanic()
}

// parseUint16List decodes a body made of big-endian uint16 values.
func parseUint16List(body []byte) ([]uint16, error) {
	if len(body)%2 != 0 {
		return nil, fmt.Errorf("%w: odd body length %d", ErrBadRecord, len(body))
	}

	s := cryptobyte.String(body)
	values := make([]uint16, 0, len(body)/2)
	for !s.Empty() {
		var v uint16
		s.ReadUint16(&v)
		values = append(values, v)
	}
	return values, nil
}

func parseUint16(body []byte) (uint16, error) {
	values, err := parseUint16List(body)
	if err != nil {
		return 0, err
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: expected one value, got %d", ErrBadRecord, len(values))
	}
	return values[0], nil
}

// clientRequest is the fixed request of this client: NTPv4 with
// AEAD_AES_SIV_CMAC_256.
func clientRequest() ([]byte, error) {
	return marshalRecords(
		record{critical: true, typ: recordNextProtocol, body: uint16Body(ProtocolNTPv4)},
		record{typ: recordAEADAlgorithm, body: uint16Body(AEADAESSIVCMAC256)},
		record{critical: true, typ: recordEndOfMessage},
	)
}
