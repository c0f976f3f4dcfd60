// Package sshrsa publishes the "ssh-rsa" key algorithm and the RSA
// key-exchange method descriptors on top of pkg/rsakey, pkg/rsascheme, and
// pkg/wire. Where the teacher dispatches key and hash algorithms through
// static descriptor tables, this package models the same registration
// surface as a Go interface implemented by a single concrete type, per the
// core's own design note about re-architecting vtable dispatch as
// idiomatic polymorphism.
package sshrsa

import (
	"errors"

	"github.com/opensshgo/rsacore/pkg/rsakey"
	"github.com/opensshgo/rsacore/pkg/rsascheme"
	"github.com/opensshgo/rsacore/pkg/wire"
)

// Name is the algorithm's wire name, as registered with SSH-2 peers.
const Name = wire.SSH2Name

// PrivateComponentCount is the number of SSH-2 mpints in an "ssh-rsa" key's
// OpenSSH internal order (n, e, d, iqmp, p, q), published for callers that
// allocate component arrays generically across key algorithms. The SSH-2
// private blob alone carries four of them (d, p, q, iqmp).
const PrivateComponentCount = 6

// ErrNotThisAlgorithm is returned by CreateFromBlobs when the public blob
// names an algorithm other than "ssh-rsa".
var ErrNotThisAlgorithm = errors.New("sshrsa: blob is not an ssh-rsa key")

// KeyAlgorithm is the registration surface the core publishes for a key
// algorithm: construction from wire blobs, serialization back to wire
// blobs, and the signing operations. Algorithm implements it for
// "ssh-rsa".
type KeyAlgorithm interface {
	Name() string
	New() *rsakey.Key
	Free(k *rsakey.Key)
	Format(k *rsakey.Key) string
	PublicBlob(k *rsakey.Key) []byte
	PrivateBlob(k *rsakey.Key) []byte
	CreateFromBlobs(public, private []byte) (*rsakey.Key, error)
	OpenSSHCreate(buf []byte) (*rsakey.Key, int, error)
	OpenSSHFormat(k *rsakey.Key) []byte
	PrivateComponentCount() int
	PublicBitCount(k *rsakey.Key) int
	VerifySignature(k *rsakey.Key, data, sig []byte) error
	Sign(k *rsakey.Key, data []byte) ([]byte, error)
}

// Algorithm is the "ssh-rsa" KeyAlgorithm implementation. It carries no
// state; every method operates purely on the rsakey.Key passed to it.
type Algorithm struct{}

// SSHRSA is the algorithm's single registered instance.
var SSHRSA Algorithm

func (Algorithm) Name() string { return Name }

func (Algorithm) New() *rsakey.Key { return rsakey.New() }

func (Algorithm) Free(k *rsakey.Key) { k.Destroy() }

func (Algorithm) Format(k *rsakey.Key) string { return wire.Human(k) }

func (Algorithm) PublicBlob(k *rsakey.Key) []byte {
	s := wire.NewSink()
	wire.WriteSSH2Public(s, k)
	return s.Bytes()
}

func (Algorithm) PrivateBlob(k *rsakey.Key) []byte {
	s := wire.NewSink()
	wire.WriteSSH2Private(s, k)
	return s.Bytes()
}

// CreateFromBlobs parses a public blob and its paired private blob,
// populates a key from both, and runs the verifier before returning it.
func (a Algorithm) CreateFromBlobs(public, private []byte) (*rsakey.Key, error) {
	k, _, err := wire.ReadSSH2Public(public)
	if err != nil {
		return nil, err
	}

	if _, err := wire.ReadSSH2Private(private, k); err != nil {
		k.Destroy()
		return nil, err
	}

	if err := k.Verify(); err != nil {
		k.Destroy()
		return nil, err
	}
	return k, nil
}

// OpenSSHCreate parses an OpenSSH internal-order private key and runs the
// verifier, which is mandatory on this path since OpenSSH key files do not
// guarantee canonical prime ordering.
func (a Algorithm) OpenSSHCreate(buf []byte) (*rsakey.Key, int, error) {
	k, consumed, err := wire.ReadOpenSSHPrivate(buf)
	if err != nil {
		return nil, 0, err
	}
	if err := k.Verify(); err != nil {
		k.Destroy()
		return nil, 0, err
	}
	return k, consumed, nil
}

func (a Algorithm) OpenSSHFormat(k *rsakey.Key) []byte {
	s := wire.NewSink()
	wire.WriteOpenSSHPrivate(s, k)
	return s.Bytes()
}

func (a Algorithm) PrivateComponentCount() int { return PrivateComponentCount }

func (a Algorithm) PublicBitCount(k *rsakey.Key) int { return k.Modulus.BitLen() }

func (a Algorithm) VerifySignature(k *rsakey.Key, data, sig []byte) error {
	return rsascheme.VerifySSH2(k, data, sig)
}

// Sign panics if k carries no private exponent: per the core's error
// taxonomy, signing without private key material is a programming-contract
// violation, not a reportable error, and the panic from rsaengine.Private
// (via rsascheme.SignSSH2) is left to propagate unguarded.
func (a Algorithm) Sign(k *rsakey.Key, data []byte) ([]byte, error) {
	return rsascheme.SignSSH2(k, data)
}
