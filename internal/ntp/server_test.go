package ntp

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
)

var ntpEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

func toNTPTime(t time.Time) uint64 {
	d := t.Sub(ntpEpoch)
	sec := uint64(d / time.Second)
	frac := uint64(d%time.Second) << 32 / uint64(time.Second)
	return sec<<32 | frac
}

// testServer answers NTS-protected NTP requests the way an NTS server
// would, with knobs to produce broken responses.
type testServer struct {
	t   *testing.T
	c2s cipher.AEAD
	s2c cipher.AEAD

	offset  time.Duration
	stratum uint8
	kiss    string
	cookies [][]byte

	// uniqueID replaces the echoed Unique Identifier when set.
	uniqueID []byte
	// tamper modifies the finished response.
	tamper func([]byte)
}

func newTestServer(t *testing.T, c2sKey, s2cKey []byte) *testServer {
	t.Helper()

	c2s, err := newAEAD(AEADAESSIVCMAC256, c2sKey)
	require.NoError(t, err)
	s2c, err := newAEAD(AEADAESSIVCMAC256, s2cKey)
	require.NoError(t, err)

	return &testServer{
		t:       t,
		c2s:     c2s,
		s2c:     s2c,
		stratum: 2,
		cookies: [][]byte{[]byte("fresh-cookie-1.."), []byte("fresh-cookie-2..")},
	}
}

// verifyRequest checks the client's authenticator and returns its Unique
// Identifier.
func (s *testServer) verifyRequest(req []byte) []byte {
	t := s.t
	fields, err := parseFields(req, headerLength)
	require.NoError(t, err)

	var uniqueID []byte
	var authenticated bool
	for _, f := range fields {
		switch f.typ {
		case fieldUniqueIdentifier:
			uniqueID = f.body
		case fieldAuthenticator:
			plaintext, err := open(s.c2s, f.body, req[:f.offset])
			require.NoError(t, err)
			require.Empty(t, plaintext)
			authenticated = true
		}
	}
	require.True(t, authenticated, "request carries no authenticator")
	require.Len(t, uniqueID, uniqueIDLength)

	return uniqueID
}

func (s *testServer) response(req []byte) []byte {
	t := s.t
	uniqueID := s.verifyRequest(req)
	if s.uniqueID != nil {
		uniqueID = s.uniqueID
	}

	now := time.Now().Add(s.offset)
	hdr := make([]byte, headerLength)
	hdr[0] = 4<<3 | 4 // version 4, server mode
	hdr[1] = s.stratum
	hdr[2] = 6
	hdr[3] = 0xec
	if s.kiss != "" {
		copy(hdr[12:16], s.kiss)
	} else {
		copy(hdr[12:16], "GPS")
	}
	binary.BigEndian.PutUint64(hdr[16:24], toNTPTime(now.Add(-10*time.Second)))
	copy(hdr[24:32], req[40:48])
	binary.BigEndian.PutUint64(hdr[32:40], toNTPTime(now))
	binary.BigEndian.PutUint64(hdr[40:48], toNTPTime(now))

	var b cryptobyte.Builder
	b.AddBytes(hdr)
	addField(&b, fieldUniqueIdentifier, uniqueID)

	if s.kiss == "" {
		var enc cryptobyte.Builder
		for _, c := range s.cookies {
			addField(&enc, fieldCookie, c)
		}
		plaintext := enc.BytesOrPanic()

		ad := b.BytesOrPanic()
		nonce := make([]byte, nonceLength)
		_, err := rand.Read(nonce)
		require.NoError(t, err)
		addAuthenticator(&b, nonce, s.s2c.Seal(nil, nonce, plaintext, ad))
	}

	resp := b.BytesOrPanic()
	if s.tamper != nil {
		s.tamper(resp)
	}
	return resp
}

// serve answers a single request on a loopback UDP socket and returns the
// port it listens on.
func (s *testServer) serve() uint16 {
	t := s.t
	t.Helper()

	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	go func() {
		buf := make([]byte, 2048)
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			return
		}
		_, _ = conn.WriteTo(s.response(buf[:n]), addr)
	}()

	return uint16(conn.LocalAddr().(*net.UDPAddr).Port)
}

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}
