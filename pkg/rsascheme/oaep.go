package rsascheme

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/opensshgo/rsacore/pkg/bignum"
	"github.com/opensshgo/rsacore/pkg/hashalg"
	"github.com/opensshgo/rsacore/pkg/rsaengine"
	"github.com/opensshgo/rsacore/pkg/rsakey"
)

// EncryptOAEP implements RSAES-OAEP public-key encryption with an empty
// label, as used by the SSH-2 RSA key-exchange method. A size mismatch
// between plaintext, key, and hash is a programming-contract violation per
// the scheme layer's error model, so it panics rather than returning an
// error.
func EncryptOAEP(k *rsakey.Key, h hashalg.Algorithm, plaintext []byte) []byte {
	kLen := (k.Modulus.BitLen() + 7) / 8
	hLen := h.Size
	if len(plaintext) == 0 || len(plaintext) > kLen-2*hLen-2 {
		panic("rsascheme: oaep plaintext length out of range for key and hash size")
	}

	out := make([]byte, kLen)
	out[0] = 0x00

	seed := out[1 : 1+hLen]
	if _, err := rand.Read(seed); err != nil {
		panic(fmt.Sprintf("rsascheme: reading OAEP seed: %v", err))
	}

	labelHash := h.New().Sum(nil)
	copy(out[1+hLen:1+2*hLen], labelHash)

	sepPos := kLen - len(plaintext) - 1
	out[sepPos] = 0x01
	copy(out[kLen-len(plaintext):], plaintext)

	db := out[1+hLen : kLen]
	xorInPlace(db, mgf1(h, seed, len(db)))
	xorInPlace(seed, mgf1(h, db, hLen))

	x := bignum.FromBytes(out)
	y := rsaengine.Public(k, x)
	result := make([]byte, kLen)
	y.FillBytes(result)
	return result
}

// mgf1 is the mask generation function from PKCS#1: h(seed ∥ counter) for
// counter = 0, 1, 2, ..., concatenated and truncated to length bytes.
func mgf1(h hashalg.Algorithm, seed []byte, length int) []byte {
	out := make([]byte, 0, length+h.Size)
	var counter uint32
	var counterBuf [4]byte
	for len(out) < length {
		hasher := h.New()
		hasher.Write(seed)
		binary.BigEndian.PutUint32(counterBuf[:], counter)
		hasher.Write(counterBuf[:])
		out = hasher.Sum(out)
		counter++
	}
	return out[:length]
}

func xorInPlace(dst, mask []byte) {
	for i := range dst {
		dst[i] ^= mask[i]
	}
}
