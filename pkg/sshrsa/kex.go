package sshrsa

import "github.com/opensshgo/rsacore/pkg/hashalg"

// KexAlgorithm describes one RSA key-exchange method: the negotiated name,
// the hash used both for RSAES-OAEP masking and for the key-exchange
// transcript, and the nominal server host key size the method is defined
// for. The core only publishes the descriptor; the surrounding transport
// (transcript hashing, the exchange-hash signature check) is out of scope.
type KexAlgorithm struct {
	Name    string
	Hash    hashalg.Algorithm
	KeyBits int
}

// Rsa1024SHA1 is the legacy RSA key-exchange method for 1024-bit server
// host keys.
var Rsa1024SHA1 = KexAlgorithm{Name: "rsa1024-sha1", Hash: hashalg.SHA1, KeyBits: 1024}

// Rsa2048SHA256 is the RSA key-exchange method for 2048-bit server host
// keys.
var Rsa2048SHA256 = KexAlgorithm{Name: "rsa2048-sha256", Hash: hashalg.SHA256, KeyBits: 2048}

// KexAlgorithms is the registered table of RSA key-exchange descriptors.
var KexAlgorithms = []KexAlgorithm{Rsa1024SHA1, Rsa2048SHA256}
