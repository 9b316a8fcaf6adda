package aead2022

import (
	"crypto/aes"
	"crypto/cipher"
)

// aesGcmCipher covers both AES-GCM kinds; the key length (16 or 32) decides
// which. Sub-keys are bound to the session identifier as well as the salt.
type aesGcmCipher struct {
	key       []byte
	sessionID uint64
}

func newAesGcm(key []byte, sessionID uint64) *aesGcmCipher {
	k := make([]byte, len(key))
	copy(k, key)
	return &aesGcmCipher{key: k, sessionID: sessionID}
}

// packetAEAD derives the one-time sub-key for salt and builds the GCM
// instance around it. The sub-key length equals the master key length, which
// is a valid AES key length by construction, so the errors are unreachable.
func (c *aesGcmCipher) packetAEAD(salt []byte) cipher.AEAD {
	subkey := make([]byte, len(c.key))
	sessionSubkey(subkey, c.key, salt, c.sessionID)

	block, err := aes.NewCipher(subkey)
	if err != nil {
		panic("aead2022: " + err.Error())
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic("aead2022: " + err.Error())
	}
	return aead
}

func (c *aesGcmCipher) encryptPacket(salt, buf []byte) {
	sealPacket(c.packetAEAD(salt), buf)
}

func (c *aesGcmCipher) decryptPacket(salt, buf []byte) bool {
	return openPacket(c.packetAEAD(salt), buf)
}
