package ntske

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRequest(t *testing.T) {
	req, err := clientRequest()
	require.NoError(t, err)

	want := []byte{
		0x80, 0x01, 0x00, 0x02, 0x00, 0x00, // critical NextProto: NTPv4
		0x00, 0x04, 0x00, 0x02, 0x00, 0x0f, // AEAD: AES-SIV-CMAC-256
		0x80, 0x00, 0x00, 0x00, // critical EOM
	}
	assert.Equal(t, want, req)
}

func TestReadRecord(t *testing.T) {
	raw, err := marshalRecords(
		record{critical: true, typ: recordNextProtocol, body: uint16Body(ProtocolNTPv4)},
		record{typ: recordNewCookie, body: []byte("cookie")},
		record{typ: 0x1234, body: nil},
	)
	require.NoError(t, err)
	r := bytes.NewReader(raw)

	rec, err := readRecord(r)
	require.NoError(t, err)
	assert.True(t, rec.critical)
	assert.Equal(t, recordNextProtocol, rec.typ)
	assert.Equal(t, []byte{0, 0}, rec.body)

	rec, err = readRecord(r)
	require.NoError(t, err)
	assert.False(t, rec.critical)
	assert.Equal(t, recordNewCookie, rec.typ)
	assert.Equal(t, []byte("cookie"), rec.body)

	rec, err = readRecord(r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), rec.typ)
	assert.Empty(t, rec.body)

	_, err = readRecord(r)
	assert.Error(t, err)
}

func TestReadRecord_Truncated(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "short header", raw: []byte{0x80}},
		{name: "short body", raw: []byte{0x00, 0x05, 0x00, 0x04, 0xaa}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readRecord(bytes.NewReader(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseUint16(t *testing.T) {
	v, err := parseUint16([]byte{0x11, 0x22})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1122), v)

	_, err = parseUint16([]byte{0x11})
	assert.ErrorIs(t, err, ErrBadRecord)

	_, err = parseUint16([]byte{0x00, 0x01, 0x00, 0x02})
	assert.ErrorIs(t, err, ErrBadRecord)

	list, err := parseUint16List([]byte{0x00, 0x01, 0x00, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2}, list)
}

func TestServerError(t *testing.T) {
	assert.Equal(t, "server error: bad request", (&ServerError{Code: ErrorCodeBadRequest}).Error())
	assert.Equal(t, "server error: code 42", (&ServerError{Code: 42}).Error())
}
