package sshrsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/rsakey"
	"github.com/opensshgo/rsacore/pkg/sshrsa"
)

func realKey1024() *rsakey.Key {
	hex := func(s string) *bignum.Int { return bignum.FromBytes(hexDecode(s)) }
	k := rsakey.New()
	k.Modulus = hex("c9effba431fc2b464d4f49e2ea524eb5f8271520e7798e0f5c5f6fc49de9150c3318aa5babd1342f6cba66ac09b5cbaf225ca918fb4a3887f9931e971ec3a938666bd94bb8fb98a4eb9a5d1b764bcafa95c9fcb42f50488e5d4538e1aaf7353fd5621b6b421f3d22a9d3c3ddf9001f4ccdd7578a5f1c30de9380f5b4f89bcb0d")
	k.Exponent = hex("010001")
	k.PrivateExponent = hex("1593385590a99a8e0650845a6422ab1a320b2aecbb0e77a9187b71db95eb833e2c6f64342b254ce80c3bd62067612f03e52df53b200e0c002b2016d29a8cd91566e98def76c574843c02304d2628e15aaac79b6c4d95e3876adb50f7fa02eea03a8667c9f834b52845e5e19a27e6aa63ec274688afaa2977555c226be498ced9")
	k.P = hex("ede1e8e30e06f94e229a6a76b724f8b0149c130ee02ce9192b62bc785994bec356c09f9d4727a936c626540d70a95b7c45b3e005aee7822f35c92ce47bd17f13")
	k.Q = hex("d9513d1399e270eafbf34951397bce940f76f4406fe3ca0598bd90d699731c80fc735509484e2d7114398e8642420f8c249364372bf86376021d9404f3a9315f")
	k.IQMP = hex("3e5dc5c62c73a1fe45128a07bced2ac779d6b5bb6bbd64b93985bbf8e2d4e0fe6a5ea06a44fa3d0d92fedf2842e3e172f90bae7ffcd416f8535da5faac76f527")
	k.Bits = 1024
	k.Bytes = 128
	return k
}

func hexDecode(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := range b {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	panic("bad hex")
}

func TestAlgorithmMetadata(t *testing.T) {
	var alg sshrsa.KeyAlgorithm = sshrsa.SSHRSA
	require.Equal(t, "ssh-rsa", alg.Name())
	require.Equal(t, 6, alg.PrivateComponentCount())
}

func TestPublicPrivateBlobRoundTripThroughCreateFromBlobs(t *testing.T) {
	alg := sshrsa.SSHRSA
	k := realKey1024()

	public := alg.PublicBlob(k)
	private := alg.PrivateBlob(k)

	got, err := alg.CreateFromBlobs(public, private)
	require.NoError(t, err)
	require.True(t, got.Modulus.Equal(k.Modulus))
	require.True(t, got.P.Equal(k.P))
	require.Equal(t, 1024, alg.PublicBitCount(got))
}

func TestCreateFromBlobsRejectsWrongAlgorithm(t *testing.T) {
	alg := sshrsa.SSHRSA
	k := realKey1024()
	badPublic := []byte{0, 0, 0, 4, 's', 's', 'h', 'x'}
	_, err := alg.CreateFromBlobs(badPublic, alg.PrivateBlob(k))
	require.Error(t, err)
}

func TestOpenSSHRoundTrip(t *testing.T) {
	alg := sshrsa.SSHRSA
	k := realKey1024()
	blob := alg.OpenSSHFormat(k)

	got, consumed, err := alg.OpenSSHCreate(blob)
	require.NoError(t, err)
	require.Equal(t, len(blob), consumed)
	require.True(t, got.P.Equal(k.P))
	require.True(t, got.Q.Equal(k.Q))
}

func TestSignAndVerifySignatureThroughAlgorithm(t *testing.T) {
	alg := sshrsa.SSHRSA
	k := realKey1024()
	data := []byte("payload to authenticate")

	sig, err := alg.Sign(k, data)
	require.NoError(t, err)
	require.NoError(t, alg.VerifySignature(k, data, sig))
	require.Error(t, alg.VerifySignature(k, []byte("different payload"), sig))
}

func TestSignPanicsWithoutPrivateExponent(t *testing.T) {
	alg := sshrsa.SSHRSA
	k := realKey1024()
	k.PrivateExponent = nil
	require.Panics(t, func() {
		_, _ = alg.Sign(k, []byte("x"))
	})
}

func TestKexAlgorithmsAreRegistered(t *testing.T) {
	require.Len(t, sshrsa.KexAlgorithms, 2)
	require.Equal(t, "rsa1024-sha1", sshrsa.Rsa1024SHA1.Name)
	require.Equal(t, "rsa2048-sha256", sshrsa.Rsa2048SHA256.Name)
	require.Equal(t, 20, sshrsa.Rsa1024SHA1.Hash.Size)
	require.Equal(t, 32, sshrsa.Rsa2048SHA256.Hash.Size)
}
