package aead2022

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

// chaCha20Poly1305Cipher derives its sub-keys from (key, salt) alone; the
// session identifier does not participate for this family. That asymmetry
// with the AES-GCM kinds is fixed by the wire protocol.
type chaCha20Poly1305Cipher struct {
	key []byte
}

func newChaCha20Poly1305(key []byte) *chaCha20Poly1305Cipher {
	k := make([]byte, len(key))
	copy(k, key)
	return &chaCha20Poly1305Cipher{key: k}
}

func (c *chaCha20Poly1305Cipher) packetAEAD(salt []byte) cipher.AEAD {
	subkey := make([]byte, chacha20poly1305.KeySize)
	packetSubkey(subkey, c.key, salt)

	aead, err := chacha20poly1305.New(subkey)
	if err != nil {
		panic("aead2022: " + err.Error())
	}
	return aead
}

func (c *chaCha20Poly1305Cipher) encryptPacket(salt, buf []byte) {
	sealPacket(c.packetAEAD(salt), buf)
}

func (c *chaCha20Poly1305Cipher) decryptPacket(salt, buf []byte) bool {
	return openPacket(c.packetAEAD(salt), buf)
}
