package saltwire

import (
	"errors"
	"strings"
)

var (
	ErrUnknownKind = errors.New("saltwire: unknown cipher kind")
	ErrKeySize     = errors.New("saltwire: key length does not match cipher kind")
)

// CipherCategory distinguishes the per-datagram cipher families at call sites.
type CipherCategory uint8

const (
	// CategoryAead is the first-generation AEAD family (HKDF-SHA1 sub-keys).
	CategoryAead CipherCategory = iota + 1
	// CategoryAead2022 is the AEAD-2022 family (BLAKE3 sub-keys, session binding).
	CategoryAead2022
)

func (c CipherCategory) String() string {
	switch c {
	case CategoryAead:
		return "AEAD"
	case CategoryAead2022:
		return "AEAD-2022"
	default:
		return "UNKNOWN"
	}
}

// CipherKind identifies one cipher of the saltwire wire protocol. The
// enumeration is closed and versioned: values are fixed by the protocol and
// adding a kind must never change the behavior of existing kinds.
type CipherKind uint8

const (
	KindAes128Gcm CipherKind = iota + 1
	KindAes256Gcm
	KindChaCha20Poly1305

	KindAead2022Aes128Gcm
	KindAead2022Aes256Gcm
	KindAead2022ChaCha20Poly1305
	// KindAead2022ChaCha8Poly1305 is part of the wire enumeration, but the
	// reduced-round transform is only compiled in with the saltwire_extra
	// build tag. Constructing it without the tag fails like an unknown kind.
	KindAead2022ChaCha8Poly1305
)

func (k CipherKind) String() string {
	switch k {
	case KindAes128Gcm:
		return "aes-128-gcm"
	case KindAes256Gcm:
		return "aes-256-gcm"
	case KindChaCha20Poly1305:
		return "chacha20-ietf-poly1305"
	case KindAead2022Aes128Gcm:
		return "2022-blake3-aes-128-gcm"
	case KindAead2022Aes256Gcm:
		return "2022-blake3-aes-256-gcm"
	case KindAead2022ChaCha20Poly1305:
		return "2022-blake3-chacha20-poly1305"
	case KindAead2022ChaCha8Poly1305:
		return "2022-blake3-chacha8-poly1305"
	default:
		return "unknown"
	}
}

// Category reports which per-datagram family the kind belongs to.
func (k CipherKind) Category() CipherCategory {
	switch k {
	case KindAes128Gcm, KindAes256Gcm, KindChaCha20Poly1305:
		return CategoryAead
	case KindAead2022Aes128Gcm, KindAead2022Aes256Gcm,
		KindAead2022ChaCha20Poly1305, KindAead2022ChaCha8Poly1305:
		return CategoryAead2022
	default:
		return 0
	}
}

// KeySize returns the master key length in bytes, or 0 for an unknown kind.
func (k CipherKind) KeySize() int {
	switch k {
	case KindAes128Gcm, KindAead2022Aes128Gcm:
		return 16
	case KindAes256Gcm, KindChaCha20Poly1305,
		KindAead2022Aes256Gcm, KindAead2022ChaCha20Poly1305, KindAead2022ChaCha8Poly1305:
		return 32
	default:
		return 0
	}
}

// SaltSize returns the per-packet salt length. The protocol fixes it to the
// key length for every kind.
func (k CipherKind) SaltSize() int {
	return k.KeySize()
}

// TagSize returns the authentication tag length appended to every packet.
func (k CipherKind) TagSize() int {
	switch k.Category() {
	case CategoryAead, CategoryAead2022:
		return 16
	default:
		return 0
	}
}

// ParseCipherKind resolves a wire-protocol cipher name. Historic aliases are
// accepted; matching is case-insensitive.
func ParseCipherKind(name string) (CipherKind, error) {
	switch strings.ToLower(name) {
	case "aes-128-gcm":
		return KindAes128Gcm, nil
	case "aes-256-gcm":
		return KindAes256Gcm, nil
	case "chacha20-ietf-poly1305", "chacha20-poly1305":
		return KindChaCha20Poly1305, nil
	case "2022-blake3-aes-128-gcm":
		return KindAead2022Aes128Gcm, nil
	case "2022-blake3-aes-256-gcm":
		return KindAead2022Aes256Gcm, nil
	case "2022-blake3-chacha20-poly1305":
		return KindAead2022ChaCha20Poly1305, nil
	case "2022-blake3-chacha8-poly1305":
		return KindAead2022ChaCha8Poly1305, nil
	default:
		return 0, ErrUnknownKind
	}
}
