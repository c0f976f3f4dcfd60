// Package rsakey is the in-memory RSA key record described in the core's
// data model: modulus, exponent, the optional private components, and the
// verifier that establishes (and canonicalizes) the invariants a private
// key must hold before it can be used for a private operation.
package rsakey

import (
	"errors"
	"fmt"

	"github.com/opensshgo/rsacore/pkg/bignum"
)

// ErrInvalidKey is returned by Verify when a private key fails any of the
// consistency invariants in the spec's §4.2.
var ErrInvalidKey = errors.New("rsakey: invalid private key")

// Key is an RSA public or private key record. A Key populated only with
// Modulus and Exponent is a public key. The private fields are present only
// for private keys, and (per the spec's lifecycle rule) must not be used for
// a private operation before a successful call to Verify.
type Key struct {
	// Modulus is n.
	Modulus *bignum.Int
	// Exponent is the public exponent e.
	Exponent *bignum.Int
	// Bits is the nominal bit length of the modulus as recorded on the
	// wire (an SSH-1 public blob's length word). It may exceed the true
	// bit count of Modulus.
	Bits int
	// Bytes is the byte length used for SSH-1 PKCS#1 v1.5 padding: the
	// number of bytes consumed reading the SSH-1 mpint encoding of the
	// modulus, minus two. See the open question in the original spec's
	// design notes about this arithmetic at non-multiple-of-8 bit counts;
	// it is preserved verbatim for wire compatibility.
	Bytes int

	// PrivateExponent is d. Present only for private keys.
	PrivateExponent *bignum.Int
	// P and Q are the two prime factors of Modulus. After Verify succeeds,
	// P > Q always holds.
	P, Q *bignum.Int
	// IQMP is the multiplicative inverse of Q modulo P.
	IQMP *bignum.Int

	// Comment is an opaque, non-cryptographic user label.
	Comment string
}

// New returns an empty key record, suitable for field-by-field population by
// a wire codec.
func New() *Key {
	return &Key{}
}

// IsPrivate reports whether k carries private-key material.
func (k *Key) IsPrivate() bool {
	return k.PrivateExponent != nil
}

// Destroy releases every bignum field and the comment string. k must not be
// used afterward. Codecs that partially populate a key and then fail must
// call Destroy on the partial result.
func (k *Key) Destroy() {
	for _, x := range []*bignum.Int{k.Modulus, k.Exponent, k.PrivateExponent, k.P, k.Q, k.IQMP} {
		if x != nil {
			x.Release()
		}
	}
	k.Modulus, k.Exponent, k.PrivateExponent, k.P, k.Q, k.IQMP = nil, nil, nil, nil, nil, nil
	k.Comment = ""
}

// Verify checks the four consistency invariants a fully-populated private
// key must hold:
//
//  1. n = p * q
//  2. e*d ≡ 1 (mod p-1) and e*d ≡ 1 (mod q-1)
//  3. p > q, canonicalizing by swapping and recomputing iqmp if not
//  4. iqmp*q ≡ 1 (mod p)
//
// On success k.P, k.Q, and k.IQMP may have been rewritten to the canonical
// order; k is then safe to use for a private operation. On failure k is
// unchanged and the caller should discard it via Destroy.
func (k *Key) Verify() error {
	if k.Modulus == nil || k.Exponent == nil || k.PrivateExponent == nil || k.P == nil || k.Q == nil || k.IQMP == nil {
		return fmt.Errorf("%w: incomplete private key", ErrInvalidKey)
	}

	p, q := k.P, k.Q
	if !p.Mul(q).Equal(k.Modulus) {
		return fmt.Errorf("%w: n != p*q", ErrInvalidKey)
	}

	pm1 := p.Dec()
	qm1 := q.Dec()
	ed := k.Exponent.Mul(k.PrivateExponent)
	if !ed.Mod(pm1).Equal(bignum.FromInt64(1)) {
		return fmt.Errorf("%w: e*d != 1 (mod p-1)", ErrInvalidKey)
	}
	if !ed.Mod(qm1).Equal(bignum.FromInt64(1)) {
		return fmt.Errorf("%w: e*d != 1 (mod q-1)", ErrInvalidKey)
	}

	iqmp := k.IQMP
	if p.Cmp(q) <= 0 {
		p, q = q, p
		iqmp = q.ModInverse(p)
		if iqmp == nil {
			return fmt.Errorf("%w: q has no inverse mod p after canonicalization", ErrInvalidKey)
		}
	}

	if !iqmp.Mul(q).Mod(p).Equal(bignum.FromInt64(1)) {
		return fmt.Errorf("%w: iqmp*q != 1 (mod p)", ErrInvalidKey)
	}

	k.P, k.Q, k.IQMP = p, q, iqmp
	return nil
}
