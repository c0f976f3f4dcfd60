package wire

import (
	"errors"

	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// SSH2Name is the SSH-2 algorithm name for this key type.
const SSH2Name = "ssh-rsa"

// ErrTruncated is returned by the SSH-2 and OpenSSH readers when the input
// ends before a required field.
var ErrTruncated = errors.New("wire: truncated input")

// ErrWrongAlgorithm is returned by ReadSSH2Public when the blob's algorithm
// name does not match SSH2Name.
var ErrWrongAlgorithm = errors.New("wire: algorithm name mismatch")

// WriteSSH2Public appends k's SSH-2 public blob: the length-prefixed string
// "ssh-rsa", then the exponent and modulus as SSH-2 mpints.
func WriteSSH2Public(s *Sink, k *rsakey.Key) {
	s.String([]byte(SSH2Name))
	s.SSH2Mpint(k.Exponent)
	s.SSH2Mpint(k.Modulus)
}

// ReadSSH2Public parses an SSH-2 public blob from the start of buf.
func ReadSSH2Public(buf []byte) (k *rsakey.Key, consumed int, err error) {
	name, rest, ok := readString(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	if string(name) != SSH2Name {
		return nil, 0, ErrWrongAlgorithm
	}
	total := len(buf) - len(rest)

	e, c1, ok := ReadSSH2Mpint(rest)
	if !ok {
		return nil, 0, ErrTruncated
	}
	rest = rest[c1:]
	total += c1

	n, c2, ok := ReadSSH2Mpint(rest)
	if !ok {
		return nil, 0, ErrTruncated
	}
	total += c2

	k = rsakey.New()
	k.Exponent = e
	k.Modulus = n
	k.Bits = n.BitLen()
	return k, total, nil
}

// WriteSSH2Private appends k's SSH-2 private blob, the wire half paired
// with a public blob: d, p, q, iqmp as SSH-2 mpints, in that order.
func WriteSSH2Private(s *Sink, k *rsakey.Key) {
	s.SSH2Mpint(k.PrivateExponent)
	s.SSH2Mpint(k.P)
	s.SSH2Mpint(k.Q)
	s.SSH2Mpint(k.IQMP)
}

// ReadSSH2Private parses an SSH-2 private blob from the start of buf and
// fills k's private fields. k.Verify must be called before k is used for a
// private operation.
func ReadSSH2Private(buf []byte, k *rsakey.Key) (consumed int, err error) {
	d, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return 0, ErrTruncated
	}
	buf = buf[c:]
	total := c

	p, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	q, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	iqmp, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return 0, ErrTruncated
	}
	total += c

	k.PrivateExponent = d
	k.P = p
	k.Q = q
	k.IQMP = iqmp
	return total, nil
}
