package ntp

import (
	"crypto/cipher"
	"fmt"

	siv "github.com/secure-io/siv-go"
)

// AEADAESSIVCMAC256 is the IANA id of AEAD_AES_SIV_CMAC_256, the only
// algorithm this client implements.
const AEADAESSIVCMAC256 uint16 = 15

// newAEAD returns the cipher for the negotiated algorithm keyed with key.
func newAEAD(algorithm uint16, key []byte) (cipher.AEAD, error) {
	if algorithm != AEADAESSIVCMAC256 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAEAD, algorithm)
	}

	aead, err := siv.NewCMAC(key)
	if err != nil {
		return nil, fmt.Errorf("init aes-siv-cmac: %w", err)
	}
	return aead, nil
}
