// Package rsaengine is the RSA primitive engine: plain modular
// exponentiation for public operations, and blinded CRT-accelerated modular
// exponentiation for private operations, as specified in the core's §4.3.
package rsaengine

import (
	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// Public computes x^e mod n. All operands are public, so no timing
// mitigation is needed.
func Public(k *rsakey.Key, x *bignum.Int) *bignum.Int {
	return x.Exp(k.Exponent, k.Modulus)
}

// Private computes x^d mod n using CRT acceleration and message blinding.
// k must have passed rsakey.Key.Verify; Private panics if k carries no
// private exponent, matching the spec's treatment of "signing with a
// missing private exponent" as a programming-contract violation rather than
// a reportable error.
func Private(k *rsakey.Key, x *bignum.Int) *bignum.Int {
	if k.PrivateExponent == nil {
		panic("rsaengine: Private called on a key with no private exponent")
	}

	r, rInv := deriveBlindingFactor(k.PrivateExponent, x, k.Modulus)

	rEnc := crtModPow(r, k.Exponent, k.Modulus, k.P, k.Q, k.IQMP)
	blindedX := x.MulMod(rEnc, k.Modulus)
	blindedY := crtModPow(blindedX, k.PrivateExponent, k.Modulus, k.P, k.Q, k.IQMP)
	return blindedY.MulMod(rInv, k.Modulus)
}

// crtModPow computes base^exp mod n, given n = p*q and iqmp = q^-1 mod p, by
// combining base^exp mod p and base^exp mod q via the Chinese Remainder
// Theorem. exp need not be the key's private exponent: the private
// operation also uses this to raise the blinding factor to the public
// exponent, which is cheaper than a second full private-exponent modpow.
func crtModPow(base, exp, n, p, q, iqmp *bignum.Int) *bignum.Int {
	pExp := exp.Mod(p.Dec())
	qExp := exp.Mod(q.Dec())
	pRes := base.Exp(pExp, p)
	qRes := base.Exp(qExp, q)

	if pRes.Cmp(qRes) < 0 {
		pRes = pRes.Add(p)
	}
	diff := pRes.Sub(qRes)
	adjustment := diff.Mul(iqmp.Mul(q))
	combined := qRes.Add(adjustment)
	return combined.Mod(n)
}
