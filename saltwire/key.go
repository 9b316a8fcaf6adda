package saltwire

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var ErrPSKEncoding = errors.New("saltwire: pre-shared key is not valid base64")

// KeyFromPassword derives a master key from a user password using the
// OpenSSL EVP_BytesToKey construction (MD5, no salt). This derivation exists
// only for the first-generation kinds; AEAD-2022 kinds require a full-entropy
// pre-shared key and must use DecodePSK instead.
func KeyFromPassword(password string, keyLen int) []byte {
	var key, prev []byte
	h := md5.New()
	for len(key) < keyLen {
		h.Write(prev)
		h.Write([]byte(password))
		key = h.Sum(key)
		prev = key[len(key)-h.Size():]
		h.Reset()
	}
	return key[:keyLen]
}

// DecodePSK decodes a standard-base64 pre-shared key and checks its length
// against the kind's key size. AEAD-2022 keys are never password-derived.
func DecodePSK(kind CipherKind, encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrPSKEncoding
	}
	if len(key) != kind.KeySize() {
		return nil, ErrKeySize
	}
	return key, nil
}

// RandomSalt returns a fresh random salt of the kind's salt length.
// The salt travels in cleartext in the packet header; its only job is to be
// unique so that the derived per-packet sub-key is unique.
func RandomSalt(kind CipherKind) ([]byte, error) {
	salt := make([]byte, kind.SaltSize())
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
