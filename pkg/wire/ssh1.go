// Package wire implements the wire codec layer: parse/emit routines for the
// SSH-1 legacy public blob, the SSH-2 "ssh-rsa" public and private blobs,
// OpenSSH's private-key field ordering, and the human-readable fingerprint
// and key-string formats.
package wire

import (
	"encoding/binary"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// Order selects which SSH-1 mpint comes first in a public blob.
type Order int

const (
	// ExponentFirst encodes the public exponent before the modulus.
	ExponentFirst Order = iota
	// ModulusFirst encodes the modulus before the public exponent.
	ModulusFirst
)

// WriteSSH1Public appends k's SSH-1 public blob: a 32-bit big-endian nominal
// bit length, then the exponent and modulus mpints in the order order
// selects.
func WriteSSH1Public(s *Sink, k *rsakey.Key, order Order) {
	s.Uint32(uint32(k.Bits))
	if order == ExponentFirst {
		s.SSH1Mpint(k.Exponent)
		s.SSH1Mpint(k.Modulus)
	} else {
		s.SSH1Mpint(k.Modulus)
		s.SSH1Mpint(k.Exponent)
	}
}

// ReadSSH1Public parses an SSH-1 public blob from the start of buf. It
// returns the populated key, the number of bytes consumed, the raw magnitude
// bytes of the modulus as a slice into buf (for callers that want the exact
// key string for hashing), and ok=false if buf is truncated or the modulus
// has zero bit count.
func ReadSSH1Public(buf []byte, order Order) (k *rsakey.Key, consumed int, modulusMagnitude []byte, ok bool) {
	if len(buf) < 4 {
		return nil, 0, nil, false
	}
	bits := binary.BigEndian.Uint32(buf[:4])
	rest := buf[4:]
	total := 4

	firstStart := total
	first, c1, ok1 := ReadSSH1Mpint(rest)
	if !ok1 {
		return nil, 0, nil, false
	}
	rest = rest[c1:]
	total += c1

	secondStart := total
	second, c2, ok2 := ReadSSH1Mpint(rest)
	if !ok2 {
		return nil, 0, nil, false
	}
	total += c2

	var exponent, modulus *bignum.Int
	var modulusMpintLen, modulusStart int
	if order == ExponentFirst {
		exponent, modulus = first, second
		modulusMpintLen, modulusStart = c2, secondStart
	} else {
		modulus, exponent = first, second
		modulusMpintLen, modulusStart = c1, firstStart
	}

	if modulus.BitLen() == 0 {
		return nil, 0, nil, false
	}

	k = rsakey.New()
	k.Bits = int(bits)
	k.Exponent = exponent
	k.Modulus = modulus
	k.Bytes = modulusMpintLen - 2
	return k, total, buf[modulusStart+2 : modulusStart+modulusMpintLen], true
}
