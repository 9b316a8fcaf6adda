// Package aead implements the first-generation per-datagram ciphers of the
// saltwire UDP relay protocol.
//
// The packet protocol is the same shape as the AEAD-2022 family: every
// datagram carries a cleartext random salt, a one-time sub-key is derived
// from (master key, salt), and the AEAD transform runs with an all-zero
// nonce. The differences are the derivation (HKDF-SHA1 with the "ss-subkey"
// info string instead of BLAKE3) and the absence of any session identifier.
//
// New deployments should prefer the aead2022 package; this family exists for
// interoperability with older peers.
package aead
