// Package sshmac is the generic HMAC construction used by SSH-2 message
// authentication, parameterized over a pkg/hashalg descriptor the way
// pkg/cbmpc's transcript hashing is parameterized over a curve's hash
// choice. It precomputes the inner and outer pad states once per key and
// clones them per message, and exposes the legacy "bug-compatible" keying
// variants some SSH-2 peers still expect.
package sshmac

import (
	"fmt"
	"hash"

	"github.com/opensshgo/rsacore/pkg/hashalg"
)

// HMAC is a keyed message authentication context. The zero value is not
// usable; construct one with New or one of the named variant constructors,
// then call SetKey before Start.
type HMAC struct {
	alg                 hashalg.Algorithm
	outputLen           int
	bugCompatibleKeying bool

	inner, outer hash.Hash
	live         hash.Hash
}

// New returns an HMAC context for alg, truncating the finalized MAC to
// outputLen bytes. When bugCompatibleKeying is set, a key longer than alg's
// block size is reduced to the first sixteen bytes of its hash instead of
// the full digest, matching a legacy peer's keying bug.
func New(alg hashalg.Algorithm, outputLen int, bugCompatibleKeying bool) *HMAC {
	return &HMAC{alg: alg, outputLen: outputLen, bugCompatibleKeying: bugCompatibleKeying}
}

// NewMD5 returns the HMAC-MD5 variant (block 64, digest 16, output 16).
func NewMD5() *HMAC { return New(hashalg.MD5, hashalg.MD5.Size, false) }

// NewSHA1 returns the HMAC-SHA1 variant (block 64, digest 20, output 20).
func NewSHA1() *HMAC { return New(hashalg.SHA1, hashalg.SHA1.Size, false) }

// NewSHA1_96 returns the HMAC-SHA1-96 variant (block 64, digest 20, output 12).
func NewSHA1_96() *HMAC { return New(hashalg.SHA1, 12, false) }

// NewSHA2_256 returns the HMAC-SHA2-256 variant (block 64, digest 32, output 32).
func NewSHA2_256() *HMAC { return New(hashalg.SHA256, hashalg.SHA256.Size, false) }

// NewSHA1BugCompatible returns the legacy HMAC-SHA1 variant that keys with
// only the first sixteen bytes of the hashed key when the key exceeds block
// length. Preserved purely for interop with buggy peers.
func NewSHA1BugCompatible() *HMAC { return New(hashalg.SHA1, 16, true) }

// NewSHA1_96BugCompatible is NewSHA1BugCompatible truncated to a 12-byte
// output, with the same keying quirk.
func NewSHA1_96BugCompatible() *HMAC { return New(hashalg.SHA1, 12, true) }

// SetKey schedules key, deriving and caching the inner and outer precomputed
// hash states. It may be called more than once on the same context to
// rekey; any live (started but unfinalized) message is discarded.
func (m *HMAC) SetKey(key []byte) {
	k := key
	if len(k) > m.alg.BlockSize {
		digester := m.alg.New()
		digester.Write(k)
		digest := digester.Sum(nil)
		if m.bugCompatibleKeying {
			digest = digest[:16]
		}
		k = digest
	}

	padded := make([]byte, m.alg.BlockSize)
	copy(padded, k)

	ipad := make([]byte, m.alg.BlockSize)
	opad := make([]byte, m.alg.BlockSize)
	for i, b := range padded {
		ipad[i] = b ^ 0x36
		opad[i] = b ^ 0x5C
	}

	m.inner = m.alg.New()
	m.inner.Write(ipad)
	m.outer = m.alg.New()
	m.outer.Write(opad)
	m.live = nil
}

// Start begins a new message, cloning the precomputed inner state as the
// live absorbing state. SetKey must have been called first.
func (m *HMAC) Start() {
	if m.inner == nil {
		panic("sshmac: start called before set_key")
	}
	live, err := hashalg.Clone(m.inner)
	if err != nil {
		panic(fmt.Sprintf("sshmac: cloning inner state: %v", err))
	}
	m.live = live
}

// Absorb feeds bytes into the live message. Calling Absorb without a prior
// Start is a programming-contract violation.
func (m *HMAC) Absorb(data []byte) {
	if m.live == nil {
		panic("sshmac: absorb called without a live message")
	}
	m.live.Write(data)
}

// Finalize completes the live message and returns the truncated MAC,
// clearing the working digest buffer and the live state. Calling Finalize
// without a prior Start is a programming-contract violation.
func (m *HMAC) Finalize() []byte {
	if m.live == nil {
		panic("sshmac: finalize called without a live message")
	}
	inner := m.live.Sum(nil)
	m.live = nil

	outer, err := hashalg.Clone(m.outer)
	if err != nil {
		panic(fmt.Sprintf("sshmac: cloning outer state: %v", err))
	}
	outer.Write(inner)
	full := outer.Sum(nil)

	for i := range inner {
		inner[i] = 0
	}

	return full[:m.outputLen]
}
