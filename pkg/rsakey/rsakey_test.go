package rsakey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// The textbook 61*53 example: n=3233, e=17, d=2753, iqmp=38.
func toyKey(p, q int64) *rsakey.Key {
	return &rsakey.Key{
		Modulus:         bignum.FromInt64(3233),
		Exponent:        bignum.FromInt64(17),
		PrivateExponent: bignum.FromInt64(2753),
		P:               bignum.FromInt64(p),
		Q:               bignum.FromInt64(q),
		IQMP:            bignum.FromInt64(38),
	}
}

func TestVerifySucceedsOnCanonicalKey(t *testing.T) {
	k := toyKey(61, 53)
	require.NoError(t, k.Verify())
	require.True(t, k.P.Equal(bignum.FromInt64(61)))
	require.True(t, k.Q.Equal(bignum.FromInt64(53)))
}

func TestVerifyCanonicalizesSwappedPrimes(t *testing.T) {
	k := toyKey(53, 61) // p < q on input
	require.NoError(t, k.Verify())
	require.True(t, k.P.Equal(bignum.FromInt64(61)), "p should be the larger prime after canonicalization")
	require.True(t, k.Q.Equal(bignum.FromInt64(53)))
	require.True(t, k.IQMP.Mul(k.Q).Mod(k.P).Equal(bignum.FromInt64(1)))
}

func TestVerifyRejectsBadModulus(t *testing.T) {
	k := toyKey(61, 53)
	k.Modulus = bignum.FromInt64(3234)
	require.ErrorIs(t, k.Verify(), rsakey.ErrInvalidKey)
}

func TestVerifyRejectsBadExponentPair(t *testing.T) {
	k := toyKey(61, 53)
	k.PrivateExponent = bignum.FromInt64(7)
	require.ErrorIs(t, k.Verify(), rsakey.ErrInvalidKey)
}

func TestVerifyRejectsIncompleteKey(t *testing.T) {
	k := &rsakey.Key{Modulus: bignum.FromInt64(3233), Exponent: bignum.FromInt64(17)}
	require.ErrorIs(t, k.Verify(), rsakey.ErrInvalidKey)
}

func TestDestroyClearsFields(t *testing.T) {
	k := toyKey(61, 53)
	k.Comment = "test@example"
	k.Destroy()
	require.Nil(t, k.Modulus)
	require.Nil(t, k.P)
	require.Equal(t, "", k.Comment)
}

func TestIsPrivate(t *testing.T) {
	pub := &rsakey.Key{Modulus: bignum.FromInt64(3233), Exponent: bignum.FromInt64(17)}
	require.False(t, pub.IsPrivate())

	priv := toyKey(61, 53)
	require.True(t, priv.IsPrivate())
}
