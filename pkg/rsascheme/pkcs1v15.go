// Package rsascheme is the RSA scheme layer: SSH-1 PKCS#1 v1.5 public
// encryption, RSASSA-PKCS1-v1_5 signing and verification with embedded SHA-1
// DigestInfo, and RSAES-OAEP public encryption for SSH-2 key exchange. It
// sits directly on top of pkg/rsaengine's primitive operations and
// pkg/wire's signature blob framing, the way pkg/cbmpc's protocol packages
// sit on top of its curve and transcript primitives.
package rsascheme

import (
	"crypto/rand"
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/rsaengine"
	"github.com/opensshgo/rsacore/pkg/rsakey"
	"github.com/opensshgo/rsacore/pkg/wire"
)

// ErrPlaintextTooLong is returned when a plaintext does not fit the key's
// padding overhead.
var ErrPlaintextTooLong = errors.New("rsascheme: plaintext too long for key size")

// ErrVerificationFailed is returned by VerifySSH2 when the signature does
// not decode to the expected PKCS#1 v1.5 layout.
var ErrVerificationFailed = errors.New("rsascheme: signature verification failed")

// sha1DigestInfoPrefix is the DER encoding of
// SEQUENCE { SEQUENCE { OID 1.3.14.3.2.26, NULL }, OCTET STRING of length 0x14 },
// with its own leading 0x00 byte doubling as the separator that ends the
// 0xFF padding run.
var sha1DigestInfoPrefix = []byte{
	0x00, 0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2B, 0x0E, 0x03, 0x02, 0x1A, 0x05, 0x00, 0x04, 0x14,
}

// EncryptSSH1 implements SSH-1's PKCS#1 v1.5 public-key encryption: a
// key.Bytes-length buffer of 0x00, 0x02, non-zero random padding, a 0x00
// separator, and the plaintext, interpreted as a big-endian integer and
// raised to the public exponent.
func EncryptSSH1(k *rsakey.Key, plaintext []byte) ([]byte, error) {
	if len(plaintext) > k.Bytes-4 {
		return nil, fmt.Errorf("%w: %d bytes exceeds key.bytes-4=%d", ErrPlaintextTooLong, len(plaintext), k.Bytes-4)
	}

	buf := make([]byte, k.Bytes)
	buf[0] = 0x00
	buf[1] = 0x02
	sep := k.Bytes - len(plaintext) - 1
	if err := fillNonZeroRandom(buf[2:sep]); err != nil {
		return nil, err
	}
	buf[sep] = 0x00
	copy(buf[sep+1:], plaintext)

	x := bignum.FromBytes(buf)
	y := rsaengine.Public(k, x)

	out := make([]byte, k.Bytes)
	y.FillBytes(out)
	return out, nil
}

// fillNonZeroRandom fills buf with random bytes, regenerating any byte that
// comes out zero, since a zero byte inside the PKCS#1 v1.5 padding run would
// be indistinguishable from the separator that ends it.
func fillNonZeroRandom(buf []byte) error {
	for i := range buf {
		for {
			var b [1]byte
			if _, err := rand.Read(b[:]); err != nil {
				return err
			}
			if b[0] != 0 {
				buf[i] = b[0]
				break
			}
		}
	}
	return nil
}

// SignSSH2 computes an RSASSA-PKCS1-v1_5 signature over data using SHA-1,
// returning the SSH-2 wire encoding: the string "ssh-rsa" followed by an
// mpint of the signature integer. k must have passed rsakey.Key.Verify.
func SignSSH2(k *rsakey.Key, data []byte) ([]byte, error) {
	h := sha1.Sum(data)

	kLen := (k.Modulus.BitLen() - 1) / 8
	overhead := 1 + len(sha1DigestInfoPrefix) + len(h)
	if kLen <= overhead {
		return nil, fmt.Errorf("%w: modulus too small for a SHA-1 signature", ErrPlaintextTooLong)
	}

	em := make([]byte, kLen)
	em[0] = 0x01
	prefixStart := kLen - len(sha1DigestInfoPrefix) - len(h)
	for i := 1; i < prefixStart; i++ {
		em[i] = 0xFF
	}
	copy(em[prefixStart:], sha1DigestInfoPrefix)
	copy(em[prefixStart+len(sha1DigestInfoPrefix):], h[:])

	sigInt := rsaengine.Private(k, bignum.FromBytes(em))

	s := wire.NewSink()
	s.String([]byte(wire.SSH2Name))
	s.SSH2Mpint(sigInt)
	return s.Bytes(), nil
}

// VerifySSH2 checks an RSASSA-PKCS1-v1_5/SHA-1 signature produced by
// SignSSH2 against data, using k's public components.
func VerifySSH2(k *rsakey.Key, data, sig []byte) error {
	name, rest, ok := wire.ReadString(sig)
	if !ok {
		return fmt.Errorf("%w: truncated signature blob", ErrVerificationFailed)
	}
	if string(name) != wire.SSH2Name {
		return fmt.Errorf("%w: unexpected algorithm %q", ErrVerificationFailed, name)
	}
	sigInt, consumed, ok := wire.ReadSSH2Mpint(rest)
	if !ok || consumed != len(rest) {
		return fmt.Errorf("%w: malformed signature mpint", ErrVerificationFailed)
	}

	m := rsaengine.Public(k, sigInt)

	byteLen := (k.Modulus.BitLen() + 7) / 8
	h := sha1.Sum(data)

	em := make([]byte, byteLen)
	m.FillBytes(em)

	ok = em[0] == 0x00 && em[1] == 0x01
	prefixStart := byteLen - len(sha1DigestInfoPrefix) - len(h)
	for i := 2; i < prefixStart; i++ {
		ok = ok && em[i] == 0xFF
	}
	for i, b := range sha1DigestInfoPrefix {
		ok = ok && em[prefixStart+i] == b
	}
	for i, b := range h {
		ok = ok && em[byteLen-len(h)+i] == b
	}

	if !ok {
		return ErrVerificationFailed
	}
	return nil
}
