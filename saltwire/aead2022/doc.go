// Package aead2022 implements the AEAD-2022 per-datagram ciphers of the
// saltwire UDP relay protocol.
//
// Design goals:
//   - Stateless per packet: UDP reorders, duplicates, and drops, so no nonce
//     counter can advance between packets
//   - One-time sub-keys: every packet carries a cleartext random salt and the
//     transform key is BLAKE3-derived from (master key, salt); because the key
//     is unique per packet, the AEAD nonce is a fixed all-zero value
//   - Session binding: the AES-GCM kinds additionally mix the 64-bit session
//     identifier into the derivation, separating associations that happen to
//     pick the same salt; the ChaCha kinds do not (fixed by the wire protocol)
//   - In-place transforms over a caller-owned buffer, tag in the reserved tail
//
// A UdpCipher holds only immutable key material after construction and is safe
// for concurrent use across packets.
package aead2022
