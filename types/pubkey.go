package types

import (
	"crypto/ed25519"
	"strings"

	"github.com/tv42/zbase32"
)

// PublicKey identifies a network participant. It doubles as "whose storage
// namespace" on reads and as "contact identity" in the follows directory.
//
// The canonical string form is the 52-character z-base32 encoding of a
// 32-byte ed25519 public key, which is also the filename form used for
// contact marker files.
type PublicKey struct {
	id string
}

// ParsePublicKey parses the canonical z-base32 string form of a key.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := zbase32.DecodeString(strings.ToLower(s))
	if err != nil {
		return PublicKey{}, TransportErrorf("invalid public key %q: %v", s, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return PublicKey{}, TransportErrorf("invalid public key %q: decoded to %d bytes, want %d",
			s, len(raw), ed25519.PublicKeySize)
	}
	return PublicKey{id: strings.ToLower(s)}, nil
}

// PublicKeyFromBytes encodes a raw ed25519 public key into its canonical form.
func PublicKeyFromBytes(raw ed25519.PublicKey) PublicKey {
	return PublicKey{id: zbase32.EncodeToString(raw)}
}

// String returns the canonical z-base32 form.
func (p PublicKey) String() string { return p.id }

// Bytes decodes the key back to its raw 32-byte form.
func (p PublicKey) Bytes() []byte {
	raw, _ := zbase32.DecodeString(p.id)
	return raw
}

// IsZero reports whether the key is the uninitialized zero value.
func (p PublicKey) IsZero() bool { return p.id == "" }
