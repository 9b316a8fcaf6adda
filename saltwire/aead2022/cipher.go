package aead2022

import (
	"crypto/cipher"
	"errors"

	"github.com/seraven/saltwire/saltwire"
)

var (
	ErrUnsupportedKind = errors.New("aead2022: not an AEAD-2022 UDP cipher kind")
	ErrKeySize         = errors.New("aead2022: master key length does not match cipher kind")
)

// nonceSize is shared by all four kinds. The nonce is a constant all-zero
// value: sub-key uniqueness, not nonce uniqueness, is what keeps the AEAD
// transform safe here.
const nonceSize = 12

var zeroNonce [nonceSize]byte

// variant is the closed set of concrete AEAD-2022 transforms. Exactly one is
// selected at construction; adding a kind means adding one implementation
// here and one arm in New.
type variant interface {
	encryptPacket(salt, buf []byte)
	decryptPacket(salt, buf []byte) bool
}

// UdpCipher seals and opens self-contained UDP datagrams for one association.
// It is the only type callers hold; the concrete transform behind it is fixed
// at construction and never visible.
type UdpCipher struct {
	cipher variant
	kind   saltwire.CipherKind
}

// New creates an AEAD-2022 UDP cipher for the given kind. The key must be
// exactly kind.KeySize() bytes. sessionID identifies the UDP association and
// participates in sub-key derivation for the AES-GCM kinds only.
//
// Kinds outside the AEAD-2022 family, and kinds excluded by the build
// configuration, fail with ErrUnsupportedKind.
func New(kind saltwire.CipherKind, key []byte, sessionID uint64) (*UdpCipher, error) {
	if kind.Category() != saltwire.CategoryAead2022 {
		return nil, ErrUnsupportedKind
	}
	if len(key) != kind.KeySize() {
		return nil, ErrKeySize
	}

	var v variant
	switch kind {
	case saltwire.KindAead2022Aes128Gcm, saltwire.KindAead2022Aes256Gcm:
		v = newAesGcm(key, sessionID)
	case saltwire.KindAead2022ChaCha20Poly1305:
		v = newChaCha20Poly1305(key)
	case saltwire.KindAead2022ChaCha8Poly1305:
		var err error
		v, err = newChaCha8Poly1305(key)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedKind
	}

	return &UdpCipher{cipher: v, kind: kind}, nil
}

// Kind returns the cipher kind selected at construction.
func (c *UdpCipher) Kind() saltwire.CipherKind {
	return c.kind
}

// Category is always CategoryAead2022.
func (c *UdpCipher) Category() saltwire.CipherCategory {
	return saltwire.CategoryAead2022
}

// EncryptPacket seals one datagram in place. buf holds the plaintext followed
// by kind.TagSize() reserved bytes; after the call it holds the ciphertext
// with the tag written into the reserved tail. salt must be a fresh random
// value of kind.SaltSize() bytes, transmitted in cleartext alongside the
// packet. The salt is only read, never retained.
func (c *UdpCipher) EncryptPacket(salt, buf []byte) {
	c.cipher.encryptPacket(salt, buf)
}

// DecryptPacket opens one datagram in place. buf holds ciphertext plus tag;
// on success the plaintext occupies buf[:len(buf)-kind.TagSize()] and the
// result is true. On any authentication failure the result is false and the
// buffer contents are undefined: callers must discard the packet without
// inspecting it.
func (c *UdpCipher) DecryptPacket(salt, buf []byte) bool {
	return c.cipher.decryptPacket(salt, buf)
}

// sealPacket runs one in-place seal over buf using a freshly derived
// per-packet AEAD. The plaintext is everything before the reserved tag tail.
func sealPacket(aead cipher.AEAD, buf []byte) {
	plaintext := buf[:len(buf)-aead.Overhead()]
	aead.Seal(plaintext[:0], zeroNonce[:], plaintext, nil)
}

// openPacket runs one in-place open over buf. A buffer too short to carry a
// tag is rejected the same way as a forged one.
func openPacket(aead cipher.AEAD, buf []byte) bool {
	if len(buf) < aead.Overhead() {
		return false
	}
	_, err := aead.Open(buf[:0], zeroNonce[:], buf, nil)
	return err == nil
}
