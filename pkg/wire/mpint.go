package wire

import (
	"encoding/binary"

	"github.com/opensshgo/rsacore/pkg/bignum"
)

// SSH1Mpint appends x in SSH-1 mpint form: a 16-bit big-endian bit count,
// followed by the ceil(bits/8) big-endian magnitude bytes.
func (s *Sink) SSH1Mpint(x *bignum.Int) {
	bits := x.BitLen()
	s.Byte(byte(bits >> 8))
	s.Byte(byte(bits))
	s.Raw(x.Bytes())
}

// SSH1MpintBytes returns the standalone SSH-1 mpint encoding of x.
func SSH1MpintBytes(x *bignum.Int) []byte {
	s := NewSink()
	s.SSH1Mpint(x)
	return s.Bytes()
}

// ReadSSH1Mpint parses an SSH-1 mpint from the start of buf. It returns the
// value, the number of bytes consumed, and ok=false if buf is too short to
// hold the two-byte bit count and the magnitude bytes it promises. A zero
// bit count is accepted here (it decodes to zero); rejecting a zero-bit-count
// modulus is left to the caller, as ReadSSH1Public does.
func ReadSSH1Mpint(buf []byte) (x *bignum.Int, consumed int, ok bool) {
	if len(buf) < 2 {
		return nil, 0, false
	}
	bits := int(binary.BigEndian.Uint16(buf[:2]))
	nbytes := (bits + 7) / 8
	if len(buf) < 2+nbytes {
		return nil, 0, false
	}
	return bignum.FromBytes(buf[2 : 2+nbytes]), 2 + nbytes, true
}

// SSH2Mpint appends x in SSH-2 mpint form: a 32-bit big-endian byte count,
// followed by the two's-complement-unsigned magnitude (a leading 0x00 byte
// is inserted when the top bit of the magnitude would otherwise be set, so
// the value always reads back as non-negative).
func (s *Sink) SSH2Mpint(x *bignum.Int) {
	b := x.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		s.Uint32(uint32(len(b) + 1))
		s.Byte(0)
		s.Raw(b)
		return
	}
	s.Uint32(uint32(len(b)))
	s.Raw(b)
}

// SSH2MpintBytes returns the standalone SSH-2 mpint encoding of x.
func SSH2MpintBytes(x *bignum.Int) []byte {
	s := NewSink()
	s.SSH2Mpint(x)
	return s.Bytes()
}

// ReadSSH2Mpint parses an SSH-2 mpint from the start of buf, returning the
// value and bytes consumed.
func ReadSSH2Mpint(buf []byte) (x *bignum.Int, consumed int, ok bool) {
	data, rest, ok := readString(buf)
	if !ok {
		return nil, 0, false
	}
	return bignum.FromBytes(data), len(buf) - len(rest), true
}

// ReadString reads a 32-bit length-prefixed string from the start of buf,
// returning its contents, the remaining bytes, and whether buf held enough
// data. Used by callers that parse an algorithm-name string ahead of a
// payload, such as a PKCS#1 v1.5 signature blob's "ssh-rsa" tag.
func ReadString(buf []byte) (data, rest []byte, ok bool) {
	return readString(buf)
}

// readString reads a 32-bit length-prefixed string from buf, returning the
// string contents and the remaining bytes.
func readString(buf []byte) (data, rest []byte, ok bool) {
	if len(buf) < 4 {
		return nil, nil, false
	}
	n := binary.BigEndian.Uint32(buf[:4])
	buf = buf[4:]
	if uint64(len(buf)) < uint64(n) {
		return nil, nil, false
	}
	return buf[:n], buf[n:], true
}
