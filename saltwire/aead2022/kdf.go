package aead2022

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// subkeyContext is the BLAKE3 derivation context fixed by the wire protocol.
// Changing it breaks interoperability with every deployed peer.
const subkeyContext = "shadowsocks 2022 session subkey"

// sessionSubkey fills subkey with the per-packet key for the session-bound
// (AES-GCM) kinds: BLAKE3-DeriveKey over key || salt || sessionID.
func sessionSubkey(subkey, key, salt []byte, sessionID uint64) {
	material := make([]byte, 0, len(key)+len(salt)+8)
	material = append(material, key...)
	material = append(material, salt...)
	material = binary.BigEndian.AppendUint64(material, sessionID)
	blake3.DeriveKey(subkey, subkeyContext, material)
}

// packetSubkey fills subkey with the per-packet key for the ChaCha kinds:
// BLAKE3-DeriveKey over key || salt. The session identifier deliberately does
// not participate for this family.
func packetSubkey(subkey, key, salt []byte) {
	material := make([]byte, 0, len(key)+len(salt))
	material = append(material, key...)
	material = append(material, salt...)
	blake3.DeriveKey(subkey, subkeyContext, material)
}
