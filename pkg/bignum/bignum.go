// Package bignum adapts math/big to the narrow multi-precision interface the
// rest of this module consumes. It plays the role the spec calls the
// "bignum adapter (external)": the arithmetic itself is someone else's
// problem (here, the standard library); this package only exposes the
// operations the RSA core actually needs, the way pkg/cbmpc/curve exposes a
// stable Go type over a lower-level numeric backend.
package bignum

import "math/big"

// Int is an arbitrary-precision non-negative integer. The zero value is not
// usable; construct one with New, FromBytes, or FromInt64.
type Int struct {
	v *big.Int
}

// New returns the integer zero.
func New() *Int {
	return &Int{v: new(big.Int)}
}

// FromInt64 returns n as an Int. n must be non-negative.
func FromInt64(n int64) *Int {
	return &Int{v: big.NewInt(n)}
}

// FromBytes interprets buf as a big-endian unsigned magnitude.
func FromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// Copy returns an independent copy of x.
func (x *Int) Copy() *Int {
	return &Int{v: new(big.Int).Set(x.v)}
}

// Release zeroes x's internal state. x must not be used afterward. math/big
// does not expose a zeroing primitive, so this is best-effort: it overwrites
// the value with zero so a stale reference to x does not retain secret
// magnitude, but it cannot scrub words already copied off-heap by the
// runtime's GC.
func (x *Int) Release() {
	x.v.SetInt64(0)
}

// Bytes returns the big-endian unsigned magnitude of x with no leading zero
// byte. For x == 0 it returns an empty slice.
func (x *Int) Bytes() []byte {
	return x.v.Bytes()
}

// FillBytes writes the big-endian magnitude of x into buf, which must be at
// least len(x.Bytes()) bytes long; the magnitude is right-aligned and any
// leading bytes are zeroed. It panics if buf is too small, matching
// math/big.Int.FillBytes.
func (x *Int) FillBytes(buf []byte) []byte {
	return x.v.FillBytes(buf)
}

// ByteAt returns the byte at index i counting from the least-significant
// byte (index 0), zero-padded for any index at or beyond the value's true
// length. This matches the bignum adapter's "byte extraction at arbitrary
// index" operation. The PKCS#1 signature-layout check in pkg/rsascheme does
// not call it; it lays the value out with FillBytes instead.
func (x *Int) ByteAt(i int) byte {
	b := x.v.Bytes()
	pos := len(b) - 1 - i
	if pos < 0 || pos >= len(b) {
		return 0
	}
	return b[pos]
}

// BitLen returns the index of the top set bit plus one (0 for the value
// zero).
func (x *Int) BitLen() int {
	return x.v.BitLen()
}

// SetBit sets bit i (0 = least significant) of x to 1.
func (x *Int) SetBit(i int) {
	x.v.SetBit(x.v, i, 1)
}

// Bit returns bit i (0 = least significant) of x.
func (x *Int) Bit(i int) uint {
	return x.v.Bit(i)
}

// Restore is the post-mutation invariant hook the spec's bignum adapter
// exposes for bit-by-bit construction (e.g. building the blinding factor r
// one bit at a time in rsaengine). math/big keeps Int normalized after every
// mutator, so there is nothing to restore; the hook exists so the call sites
// that build values bit-by-bit read the same way they would against an
// adapter that needed it.
func (x *Int) Restore() {}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x *Int) Cmp(y *Int) int {
	return x.v.Cmp(y.v)
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool {
	return x.v.Cmp(y.v) == 0
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.v.Sign() == 0
}

// Sign returns -1, 0, or +1 depending on the sign of x. Every Int produced
// by this package is non-negative, so callers should only observe 0 or +1;
// Sign exists for parity with the defensive checks the rest of the core
// performs after subtraction.
func (x *Int) Sign() int {
	return x.v.Sign()
}

// Dec returns x - 1 as a new Int.
func (x *Int) Dec() *Int {
	return &Int{v: new(big.Int).Sub(x.v, big.NewInt(1))}
}

// Add returns x + y as a new Int.
func (x *Int) Add(y *Int) *Int {
	return &Int{v: new(big.Int).Add(x.v, y.v)}
}

// Sub returns x - y as a new Int. The result may be negative if y > x; this
// mirrors math/big and callers (e.g. the CRT recombination step) are
// responsible for keeping operands ordered per the spec.
func (x *Int) Sub(y *Int) *Int {
	return &Int{v: new(big.Int).Sub(x.v, y.v)}
}

// Mul returns x * y as a new Int.
func (x *Int) Mul(y *Int) *Int {
	return &Int{v: new(big.Int).Mul(x.v, y.v)}
}

// Mod returns x mod m as a new Int (always in [0, m)).
func (x *Int) Mod(m *Int) *Int {
	return &Int{v: new(big.Int).Mod(x.v, m.v)}
}

// MulMod returns (x * y) mod m as a new Int.
func (x *Int) MulMod(y, m *Int) *Int {
	r := new(big.Int).Mul(x.v, y.v)
	r.Mod(r, m.v)
	return &Int{v: r}
}

// Exp returns x^y mod m as a new Int. m must be positive.
func (x *Int) Exp(y, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(x.v, y.v, m.v)}
}

// ModInverse returns the multiplicative inverse of x modulo m, or nil if no
// inverse exists (x and m are not coprime).
func (x *Int) ModInverse(m *Int) *Int {
	r := new(big.Int).ModInverse(x.v, m.v)
	if r == nil {
		return nil
	}
	return &Int{v: r}
}

// String returns the base-16 representation of x with no "0x" prefix and no
// leading zeros (at least one digit).
func (x *Int) String() string {
	return x.v.Text(16)
}
