package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/seraven/saltwire/saltwire"
)

var (
	ErrUnsupportedKind = errors.New("aead: not a first-generation AEAD UDP cipher kind")
	ErrKeySize         = errors.New("aead: master key length does not match cipher kind")
)

// subkeyInfo is the HKDF info string fixed by the wire protocol.
var subkeyInfo = []byte("ss-subkey")

const nonceSize = 12

var zeroNonce [nonceSize]byte

// UdpCipher seals and opens self-contained UDP datagrams using the
// first-generation sub-key derivation. It holds only immutable key material
// after construction and is safe for concurrent use across packets.
type UdpCipher struct {
	kind    saltwire.CipherKind
	key     []byte
	newAEAD func(subkey []byte) (cipher.AEAD, error)
}

// New creates a first-generation AEAD UDP cipher for the given kind. The key
// must be exactly kind.KeySize() bytes.
func New(kind saltwire.CipherKind, key []byte) (*UdpCipher, error) {
	if kind.Category() != saltwire.CategoryAead {
		return nil, ErrUnsupportedKind
	}
	if len(key) != kind.KeySize() {
		return nil, ErrKeySize
	}

	var newAEAD func([]byte) (cipher.AEAD, error)
	switch kind {
	case saltwire.KindAes128Gcm, saltwire.KindAes256Gcm:
		newAEAD = newGcm
	case saltwire.KindChaCha20Poly1305:
		newAEAD = chacha20poly1305.New
	default:
		return nil, ErrUnsupportedKind
	}

	k := make([]byte, len(key))
	copy(k, key)
	return &UdpCipher{kind: kind, key: k, newAEAD: newAEAD}, nil
}

// Kind returns the cipher kind selected at construction.
func (c *UdpCipher) Kind() saltwire.CipherKind {
	return c.kind
}

// Category is always CategoryAead.
func (c *UdpCipher) Category() saltwire.CipherCategory {
	return saltwire.CategoryAead
}

// packetAEAD derives the one-time sub-key for salt via HKDF-SHA1 and builds
// the AEAD around it. The sub-key length equals the master key length, so the
// constructor errors are unreachable for a validated cipher.
func (c *UdpCipher) packetAEAD(salt []byte) cipher.AEAD {
	subkey := make([]byte, len(c.key))
	hk := hkdf.New(sha1.New, c.key, salt, subkeyInfo)
	if _, err := io.ReadFull(hk, subkey); err != nil {
		panic("aead: " + err.Error())
	}
	aead, err := c.newAEAD(subkey)
	if err != nil {
		panic("aead: " + err.Error())
	}
	return aead
}

// EncryptPacket seals one datagram in place; buf holds the plaintext followed
// by kind.TagSize() reserved bytes. The salt is only read, never retained.
func (c *UdpCipher) EncryptPacket(salt, buf []byte) {
	aead := c.packetAEAD(salt)
	plaintext := buf[:len(buf)-aead.Overhead()]
	aead.Seal(plaintext[:0], zeroNonce[:], plaintext, nil)
}

// DecryptPacket opens one datagram in place, reporting authenticity. On
// failure the buffer contents are undefined and the packet must be dropped.
func (c *UdpCipher) DecryptPacket(salt, buf []byte) bool {
	aead := c.packetAEAD(salt)
	if len(buf) < aead.Overhead() {
		return false
	}
	_, err := aead.Open(buf[:0], zeroNonce[:], buf, nil)
	return err == nil
}

func newGcm(subkey []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(subkey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
