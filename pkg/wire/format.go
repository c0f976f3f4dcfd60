package wire

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// HumanStringLen returns the minimum buffer size in bytes needed for Human's
// output, following the spec's sizing helper: four bytes per started 16 bits
// of each operand (one byte per hex nibble) plus twenty bytes of fixed
// overhead.
func HumanStringLen(k *rsakey.Key) int {
	return 4*(ceilDiv(k.Modulus.BitLen(), 16)+ceilDiv(k.Exponent.BitLen(), 16)) + 20
}

// Human formats k as "0xE,0xN" using the minimum number of hex nibbles
// needed for each operand (at least one nibble).
func Human(k *rsakey.Key) string {
	return fmt.Sprintf("0x%s,0x%s", k.Exponent.String(), k.Modulus.String())
}

// Fingerprint returns the key's MD5 fingerprint: "<bits(n)> " followed by
// sixteen colon-separated lowercase hex byte pairs, with the comment (if
// any) appended as " <comment>".
func Fingerprint(k *rsakey.Key) string {
	return fingerprint(k, -1)
}

// FingerprintTruncated behaves like Fingerprint but truncates the result (as
// if NUL-terminated in a fixed-size buffer of maxLen bytes) once the comment
// would overflow it, matching the wire-level fingerprint helper's buffer
// contract.
func FingerprintTruncated(k *rsakey.Key, maxLen int) string {
	return fingerprint(k, maxLen)
}

func fingerprint(k *rsakey.Key, maxLen int) string {
	s := NewSink()
	s.SSH1Mpint(k.Modulus)
	s.SSH1Mpint(k.Exponent)
	sum := md5.Sum(s.Bytes())

	pairs := make([]string, len(sum))
	for i, b := range sum {
		pairs[i] = fmt.Sprintf("%02x", b)
	}
	out := fmt.Sprintf("%d %s", k.Modulus.BitLen(), strings.Join(pairs, ":"))

	if k.Comment != "" {
		withComment := out + " " + k.Comment
		if maxLen < 0 {
			out = withComment
		} else if len(withComment) < maxLen {
			out = withComment
		} else if maxLen > 0 {
			out = withComment[:maxLen-1]
		} else {
			out = ""
		}
	}

	if maxLen >= 0 && len(out) >= maxLen {
		if maxLen == 0 {
			return ""
		}
		out = out[:maxLen-1]
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
