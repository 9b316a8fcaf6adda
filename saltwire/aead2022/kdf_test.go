package aead2022

import (
	"bytes"
	"testing"
)

func TestSessionSubkeyDeterministic(t *testing.T) {
	key := bytes.Repeat([]byte{0xaa}, 32)
	salt := bytes.Repeat([]byte{0xbb}, 32)

	a := make([]byte, 32)
	b := make([]byte, 32)
	sessionSubkey(a, key, salt, 12345)
	sessionSubkey(b, key, salt, 12345)
	if !bytes.Equal(a, b) {
		t.Fatalf("identical inputs produced different sub-keys")
	}
}

func TestSessionSubkeySensitivity(t *testing.T) {
	key := bytes.Repeat([]byte{0xaa}, 32)
	salt := bytes.Repeat([]byte{0xbb}, 32)

	base := make([]byte, 32)
	sessionSubkey(base, key, salt, 1)

	other := make([]byte, 32)
	sessionSubkey(other, key, salt, 2)
	if bytes.Equal(base, other) {
		t.Errorf("session identifier change did not change the sub-key")
	}

	salt2 := bytes.Repeat([]byte{0xbc}, 32)
	sessionSubkey(other, key, salt2, 1)
	if bytes.Equal(base, other) {
		t.Errorf("salt change did not change the sub-key")
	}

	key2 := bytes.Repeat([]byte{0xab}, 32)
	sessionSubkey(other, key2, salt, 1)
	if bytes.Equal(base, other) {
		t.Errorf("key change did not change the sub-key")
	}
}

func TestPacketSubkeyIgnoresNothing(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 32)
	salt := bytes.Repeat([]byte{0x22}, 32)

	a := make([]byte, 32)
	packetSubkey(a, key, salt)

	b := make([]byte, 32)
	packetSubkey(b, key, bytes.Repeat([]byte{0x23}, 32))
	if bytes.Equal(a, b) {
		t.Errorf("salt change did not change the sub-key")
	}

	packetSubkey(b, bytes.Repeat([]byte{0x12}, 32), salt)
	if bytes.Equal(a, b) {
		t.Errorf("key change did not change the sub-key")
	}
}

// The two derivations must not collide for the same (key, salt): the session
// form appends eight more bytes of material, and BLAKE3 separates the inputs.
func TestSessionAndPacketSubkeysDiffer(t *testing.T) {
	key := bytes.Repeat([]byte{0x44}, 32)
	salt := bytes.Repeat([]byte{0x55}, 32)

	a := make([]byte, 32)
	packetSubkey(a, key, salt)
	b := make([]byte, 32)
	sessionSubkey(b, key, salt, 0)
	if bytes.Equal(a, b) {
		t.Errorf("session and packet derivations collided")
	}
}
