package wire_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	"github.com/opensshgo/rsacore/pkg/wire"
)

// legacyMD5FingerprintPattern matches x/crypto/ssh's colon-separated hex MD5
// fingerprint format. wire.Fingerprint hashes the SSH-1 mpint encoding of
// (n, e) (spec §4.1), while ssh.FingerprintLegacyMD5 hashes the marshaled
// SSH-2 key blob; the two inputs differ, so the digests are never expected
// to be equal. This only checks that x/crypto/ssh accepts our SSH-2 wire
// encoding well enough to produce its own well-formed fingerprint from it.
var legacyMD5FingerprintPattern = regexp.MustCompile(`^([0-9a-f]{2}:){15}[0-9a-f]{2}$`)

// TestSSH2PublicBlobInteropsWithXCryptoSSH checks that the SSH-2 public blob
// this package emits is byte-for-byte what golang.org/x/crypto/ssh expects
// to parse, rather than only round-tripping through this module's own
// reader.
func TestSSH2PublicBlobInteropsWithXCryptoSSH(t *testing.T) {
	k := testKey1024
	s := wire.NewSink()
	wire.WriteSSH2Public(s, k)

	pub, err := ssh.ParsePublicKey(s.Bytes())
	require.NoError(t, err)
	require.Equal(t, "ssh-rsa", pub.Type())

	authorizedKeyLine := ssh.MarshalAuthorizedKey(pub)
	require.Contains(t, string(authorizedKeyLine), "ssh-rsa ")

	fp := ssh.FingerprintLegacyMD5(pub)
	require.Regexp(t, legacyMD5FingerprintPattern, fp)
}
