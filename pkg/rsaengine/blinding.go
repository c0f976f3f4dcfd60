package rsaengine

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/wire"
)

const blindingLabel = "RSA deterministic blinding"

// blindBitStream produces the deterministic bitstream the private operation
// uses to construct candidate blinding factors (§4.3): a seed digest is
// SHA-512(label || hashseq || SSH2-mpint(d)), and the working digest is
// SHA-512(seed || SSH2-mpint(x)). Bits are consumed LSB-first per byte; once
// all 512 bits of a working digest are spent, hashseq increments and both
// digests are re-derived. Deriving r this way (rather than from system
// randomness) avoids sharing an entropy pool with a co-resident key-agent
// process, and makes the private operation's output reproducible for a
// given (key, x) pair, which the blinding-determinism property in §8 relies
// on.
type blindBitStream struct {
	dBytes  []byte
	xBytes  []byte
	hashseq uint32
	block   [sha512.Size]byte
	bitPos  int
}

func newBlindBitStream(d, x *bignum.Int) *blindBitStream {
	bs := &blindBitStream{
		dBytes: wire.SSH2MpintBytes(d),
		xBytes: wire.SSH2MpintBytes(x),
	}
	bs.rederive()
	return bs
}

func (bs *blindBitStream) rederive() {
	var seq [4]byte
	binary.BigEndian.PutUint32(seq[:], bs.hashseq)

	seedInput := make([]byte, 0, len(blindingLabel)+len(seq)+len(bs.dBytes))
	seedInput = append(seedInput, blindingLabel...)
	seedInput = append(seedInput, seq[:]...)
	seedInput = append(seedInput, bs.dBytes...)
	seed := sha512.Sum512(seedInput)
	zeroizeBytes(seedInput)

	workingInput := make([]byte, 0, len(seed)+len(bs.xBytes))
	workingInput = append(workingInput, seed[:]...)
	workingInput = append(workingInput, bs.xBytes...)
	bs.block = sha512.Sum512(workingInput)
	bs.bitPos = 0
	zeroizeBytes(workingInput)
	zeroizeBytes(seed[:])
}

// release scrubs the stream's working digest and the mpint encodings it was
// derived from. Call once a candidate has been accepted and the stream is
// done being drawn from.
func (bs *blindBitStream) release() {
	zeroizeBytes(bs.block[:])
	zeroizeBytes(bs.dBytes)
	zeroizeBytes(bs.xBytes)
}

// nextBit returns the stream's next pseudorandom bit.
func (bs *blindBitStream) nextBit() uint {
	if bs.bitPos >= len(bs.block)*8 {
		bs.hashseq++
		bs.rederive()
	}
	byteIdx := bs.bitPos / 8
	bitIdx := uint(bs.bitPos % 8)
	bit := (bs.block[byteIdx] >> bitIdx) & 1
	bs.bitPos++
	return uint(bit)
}

// candidate builds one candidate value with n's bit length, filling from the
// most significant bit downward as bits are drawn from the stream.
func (bs *blindBitStream) candidate(nBitLen int) *bignum.Int {
	r := bignum.New()
	for i := nBitLen - 1; i >= 0; i-- {
		if bs.nextBit() == 1 {
			r.SetBit(i)
		}
	}
	r.Restore()
	return r
}

// deriveBlindingFactor draws a blinding factor r and its modular inverse by
// rejection sampling from the bitstream seeded by d and x. Candidates
// outside (0, n) or lacking an inverse mod n are discarded; the next
// candidate continues drawing from the same bitstream rather than resetting
// it, per §4.3.
func deriveBlindingFactor(d, x, n *bignum.Int) (r, rInv *bignum.Int) {
	bs := newBlindBitStream(d, x)
	nBitLen := n.BitLen()
	zero := bignum.New()

	for {
		cand := bs.candidate(nBitLen)
		if cand.Cmp(zero) <= 0 || cand.Cmp(n) >= 0 {
			continue
		}
		inv := cand.ModInverse(n)
		if inv == nil {
			continue
		}
		bs.release()
		return cand, inv
	}
}
