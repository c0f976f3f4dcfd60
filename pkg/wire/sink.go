package wire

import "encoding/binary"

// Sink is a generic append-only byte sink used by every serialization
// routine in this package, matching the spec's "binary sink" external
// interface.
type Sink struct {
	buf []byte
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Bytes returns the accumulated output.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// Raw appends b verbatim.
func (s *Sink) Raw(b []byte) {
	s.buf = append(s.buf, b...)
}

// Byte appends a single byte.
func (s *Sink) Byte(b byte) {
	s.buf = append(s.buf, b)
}

// Uint32 appends n as 4 big-endian bytes.
func (s *Sink) Uint32(n uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], n)
	s.buf = append(s.buf, tmp[:]...)
}

// String appends a 32-bit big-endian length followed by data, the SSH
// length-prefixed string used for algorithm names and signature blobs.
func (s *Sink) String(data []byte) {
	s.Uint32(uint32(len(data)))
	s.Raw(data)
}
