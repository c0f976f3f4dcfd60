package rsaengine

// zeroizeBytes overwrites buf with zeros. Used to scrub the blinding
// bitstream's working digest and the mpint encodings of the private
// exponent and message it was derived from, once a blinding factor has been
// accepted and the stream is no longer needed.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
