//go:build saltwire_extra

package aead2022

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"

	"github.com/aead/chacha20/chacha"
	"github.com/aead/poly1305"
)

// chaCha8Poly1305Cipher is the reduced-round variant, compiled in only with
// the saltwire_extra build tag. Sub-key derivation is identical to the
// 20-round kind: (key, salt), no session identifier.
type chaCha8Poly1305Cipher struct {
	key []byte
}

func newChaCha8Poly1305(key []byte) (variant, error) {
	k := make([]byte, len(key))
	copy(k, key)
	return &chaCha8Poly1305Cipher{key: k}, nil
}

func (c *chaCha8Poly1305Cipher) packetAEAD(salt []byte) cipher.AEAD {
	subkey := make([]byte, chacha.KeySize)
	packetSubkey(subkey, c.key, salt)
	return newChaChaPoly(subkey, 8)
}

func (c *chaCha8Poly1305Cipher) encryptPacket(salt, buf []byte) {
	sealPacket(c.packetAEAD(salt), buf)
}

func (c *chaCha8Poly1305Cipher) decryptPacket(salt, buf []byte) bool {
	return openPacket(c.packetAEAD(salt), buf)
}

var errChaChaPolyOpen = errors.New("aead2022: message authentication failed")

// chaChaPoly is the RFC 8439 ChaCha-Poly1305 construction with a configurable
// round count. Keystream block zero keys the one-time authenticator, the
// payload is encrypted starting at block one, and the tag covers
// ad || pad16 || ciphertext || pad16 || len(ad) || len(ciphertext).
type chaChaPoly struct {
	key    [chacha.KeySize]byte
	rounds int
}

func newChaChaPoly(key []byte, rounds int) *chaChaPoly {
	a := &chaChaPoly{rounds: rounds}
	copy(a.key[:], key)
	return a
}

func (a *chaChaPoly) NonceSize() int { return nonceSize }
func (a *chaChaPoly) Overhead() int  { return poly1305.TagSize }

func (a *chaChaPoly) keystream(nonce []byte) (cipher.Stream, [32]byte) {
	s, err := chacha.NewCipher(nonce, a.key[:], a.rounds)
	if err != nil {
		panic("aead2022: " + err.Error())
	}
	var block0 [64]byte
	s.XORKeyStream(block0[:], block0[:])
	var polyKey [32]byte
	copy(polyKey[:], block0[:32])
	return s, polyKey
}

func (a *chaChaPoly) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != nonceSize {
		panic("aead2022: bad nonce length for chacha-poly1305")
	}
	s, polyKey := a.keystream(nonce)

	ret, out := sliceForAppend(dst, len(plaintext)+poly1305.TagSize)
	ciphertext, tagOut := out[:len(plaintext)], out[len(plaintext):]
	s.XORKeyStream(ciphertext, plaintext)

	tag := authTag(polyKey, additionalData, ciphertext)
	copy(tagOut, tag[:])
	return ret
}

func (a *chaChaPoly) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != nonceSize {
		panic("aead2022: bad nonce length for chacha-poly1305")
	}
	if len(ciphertext) < poly1305.TagSize {
		return nil, errChaChaPolyOpen
	}
	s, polyKey := a.keystream(nonce)

	payload := ciphertext[:len(ciphertext)-poly1305.TagSize]
	var tag [poly1305.TagSize]byte
	copy(tag[:], ciphertext[len(payload):])
	if !poly1305.Verify(&tag, authMessage(additionalData, payload), polyKey) {
		return nil, errChaChaPolyOpen
	}

	ret, out := sliceForAppend(dst, len(payload))
	s.XORKeyStream(out, payload)
	return ret, nil
}

func authTag(polyKey [32]byte, additionalData, ciphertext []byte) [poly1305.TagSize]byte {
	var tag [poly1305.TagSize]byte
	poly1305.Sum(&tag, authMessage(additionalData, ciphertext), polyKey)
	return tag
}

// authMessage assembles the padded Poly1305 input of RFC 8439 §2.8.
func authMessage(additionalData, ciphertext []byte) []byte {
	var pad [16]byte
	msg := make([]byte, 0, len(additionalData)+len(ciphertext)+2*16)
	msg = append(msg, additionalData...)
	if rem := len(additionalData) % 16; rem != 0 {
		msg = append(msg, pad[:16-rem]...)
	}
	msg = append(msg, ciphertext...)
	if rem := len(ciphertext) % 16; rem != 0 {
		msg = append(msg, pad[:16-rem]...)
	}
	msg = binary.LittleEndian.AppendUint64(msg, uint64(len(additionalData)))
	msg = binary.LittleEndian.AppendUint64(msg, uint64(len(ciphertext)))
	return msg
}

// sliceForAppend extends in to hold n more bytes, reusing its capacity when
// possible. head aliases the extension.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
