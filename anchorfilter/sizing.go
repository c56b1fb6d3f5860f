package anchorfilter

// MBitsV1 returns capacity * bitsPerItem as a uint32, or 0 if the product is
// zero or does not fit.
func MBitsV1(capacity, bitsPerItem uint64) uint32 {
	if capacity == 0 || bitsPerItem == 0 || bitsPerItem > uint64(^uint32(0)) {
		return 0
	}
	m := capacity * bitsPerItem
	if m/bitsPerItem != capacity || m > uint64(^uint32(0)) {
		return 0
	}
	return uint32(m)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns HeaderBytesV1 + ceil(mBits/8).
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(BitsetBytesV1(mBits))
}
