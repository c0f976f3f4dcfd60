package wire

import "github.com/opensshgo/rsacore/pkg/rsakey"

// WriteOpenSSHPrivate appends k in OpenSSH's internal private-key field
// order: n, e, d, iqmp, p, q, each as an SSH-2 mpint. The result must be
// verified with k.Verify before use; OpenSSH key files do not guarantee
// p > q on disk.
func WriteOpenSSHPrivate(s *Sink, k *rsakey.Key) {
	s.SSH2Mpint(k.Modulus)
	s.SSH2Mpint(k.Exponent)
	s.SSH2Mpint(k.PrivateExponent)
	s.SSH2Mpint(k.IQMP)
	s.SSH2Mpint(k.P)
	s.SSH2Mpint(k.Q)
}

// ReadOpenSSHPrivate parses a key from OpenSSH's internal field order: n, e,
// d, iqmp, p, q. The caller must call k.Verify before using the result for
// any private operation; verification is mandatory, not optional, for this
// path because OpenSSH key files may store p and q in either order.
func ReadOpenSSHPrivate(buf []byte) (k *rsakey.Key, consumed int, err error) {
	n, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	buf = buf[c:]
	total := c

	e, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	d, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	iqmp, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	p, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	buf = buf[c:]
	total += c

	q, c, ok := ReadSSH2Mpint(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	total += c

	k = rsakey.New()
	k.Modulus = n
	k.Exponent = e
	k.PrivateExponent = d
	k.IQMP = iqmp
	k.P = p
	k.Q = q
	k.Bits = n.BitLen()
	return k, total, nil
}
