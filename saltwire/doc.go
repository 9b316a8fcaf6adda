// Package saltwire defines the cipher suite of the saltwire secure UDP relay
// protocol: the versioned enumeration of cipher kinds, their key/salt/tag
// geometry, and helpers for handling master key material.
//
// Design goals:
//   - Every datagram is sealed independently; no state between packets
//   - Per-packet sub-keys derived from a cleartext random salt
//   - A closed, wire-versioned set of cipher kinds (no runtime registration)
//   - Master keys are exact-length secrets, never logged, never truncated
//
// The actual packet transforms live in the subpackages: aead2022 implements
// the current AEAD-2022 family, aead the first-generation family.
package saltwire
