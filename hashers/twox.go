package hashers

import (
	"github.com/cespare/xxhash/v2"
)

// Twox64 returns xxHash64(data) with seed 0, least significant byte first.
func Twox64(data []byte) [Twox64Bytes]byte {
	var out [Twox64Bytes]byte
	writeU64LE(out[:], xxhash.Sum64(data))
	return out
}

// Twox128 returns two xxHash64 lanes (seeds 0 and 1) over data.
func Twox128(data []byte) [Prefix128Bytes]byte {
	var out [Prefix128Bytes]byte
	twoxLanes(out[:], data)
	return out
}

// Twox256 returns four xxHash64 lanes (seeds 0 to 3) over data.
func Twox256(data []byte) [Twox256Bytes]byte {
	var out [Twox256Bytes]byte
	twoxLanes(out[:], data)
	return out
}

// twoxLanes fills dst with len(dst)/8 xxHash64 lanes, lane i seeded with i.
func twoxLanes(dst []byte, data []byte) {
	for lane := 0; lane*Twox64Bytes < len(dst); lane++ {
		var sum uint64
		if lane == 0 {
			sum = xxhash.Sum64(data)
		} else {
			d := xxhash.NewWithSeed(uint64(lane))
			_, _ = d.Write(data)
			sum = d.Sum64()
		}
		writeU64LE(dst[lane*Twox64Bytes:], sum)
	}
}
