// Package hashalg is the hash collaborator described in the core's external
// interfaces: a small descriptor table over the standard library's
// incremental hash.Hash interface, in the same spirit as pkg/cbmpc/curve's
// Curve enum over a lower-level backend. SHA-1, SHA-256, SHA-512, and MD5
// themselves are out of scope here — only the uniform init/absorb/finalize/
// copy surface the rest of the module consumes.
package hashalg

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"errors"
	"hash"
)

// Algorithm is a hash descriptor: a name, its sizes, and a constructor for a
// fresh incremental state. It corresponds to the spec's hash adapter
// descriptor (init/sink/final/copy/free collapse onto hash.Hash's own
// Write/Sum/Reset plus the Clone helper below; free is the Go garbage
// collector).
type Algorithm struct {
	// Name is the algorithm's canonical text name, e.g. "sha-1".
	Name string
	// Size is the digest length in bytes.
	Size int
	// BlockSize is the algorithm's underlying compression block length in
	// bytes, used by HMAC's key schedule.
	BlockSize int
	// New returns a fresh, zeroed hash state.
	New func() hash.Hash
}

// Registered descriptors, matching the four hash primitives named in the
// spec's purpose section.
var (
	SHA1   = Algorithm{Name: "sha-1", Size: sha1.Size, BlockSize: sha1.BlockSize, New: sha1.New}
	SHA256 = Algorithm{Name: "sha-256", Size: sha256.Size, BlockSize: sha256.BlockSize, New: sha256.New}
	SHA512 = Algorithm{Name: "sha-512", Size: sha512.Size, BlockSize: sha512.BlockSize, New: sha512.New}
	MD5    = Algorithm{Name: "md5", Size: md5.Size, BlockSize: md5.BlockSize, New: md5.New}
)

// ErrNotCloneable is returned by Clone when the hash implementation does not
// support the marshal/unmarshal pair Clone relies on.
var ErrNotCloneable = errors.New("hashalg: hash state is not cloneable")

// Clone returns an independent copy of h's absorbed state, using the
// optional encoding.BinaryMarshaler/BinaryUnmarshaler pair the standard
// library's hash implementations provide. This is the "copy" operation the
// spec's hash adapter exposes, and it is what lets HMAC precompute the
// inner/outer pad states once and clone them per message instead of
// replaying Write(pad) on every Start call.
func Clone(h hash.Hash) (hash.Hash, error) {
	marshaler, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, ErrNotCloneable
	}
	state, err := marshaler.MarshalBinary()
	if err != nil {
		return nil, err
	}

	clone := newLike(h)
	unmarshaler, ok := clone.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, ErrNotCloneable
	}
	if err := unmarshaler.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return clone, nil
}

// newLike returns a fresh zero-state hash of the same concrete algorithm as
// h, used as the destination of Clone's unmarshal step.
func newLike(h hash.Hash) hash.Hash {
	switch h.Size() {
	case sha512.Size:
		return sha512.New()
	case sha256.Size:
		return sha256.New()
	case sha1.Size:
		return sha1.New()
	case md5.Size:
		return md5.New()
	default:
		// Unreachable for the four registered algorithms; New always
		// produces one of the above.
		panic("hashalg: unknown hash size for clone")
	}
}
