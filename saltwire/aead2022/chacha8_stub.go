//go:build !saltwire_extra

package aead2022

// The reduced-round chacha8-poly1305 kind ships only under the saltwire_extra
// build tag. Without it, selecting the kind fails exactly like an unknown
// identifier; callers cannot tell a compiled-out kind from a nonexistent one.
func newChaCha8Poly1305([]byte) (variant, error) {
	return nil, ErrUnsupportedKind
}
