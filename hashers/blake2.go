package hashers

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the unkeyed 16 byte blake2b digest of data.
func Blake2b128(data []byte) [Blake2b128Bytes]byte {
	// New only fails for an invalid size or an oversized key. Neither applies.
	hasher, _ := blake2b.New(Blake2b128Bytes, nil)
	_, _ = hasher.Write(data)

	var out [Blake2b128Bytes]byte
	sum := hasher.Sum(out[:0])
	copy(out[:], sum)
	return out
}

// Blake2b256 returns the unkeyed 32 byte blake2b digest of data.
func Blake2b256(data []byte) [Blake2b256Bytes]byte {
	return blake2b.Sum256(data)
}
