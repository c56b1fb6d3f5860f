package anchorfilter

import "github.com/forestrie/go-storagekey/hashers"

// New allocates and initializes a region sized for capacity anchors.
func New(capacity, bitsPerItem uint64, k uint8) ([]byte, error) {
	mBits := MBitsV1(capacity, bitsPerItem)
	if mBits == 0 {
		return nil, ErrMBitsOverflow
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, mBits, k); err != nil {
		return nil, err
	}
	return region, nil
}

// InitV1 initializes region, which must hold at least RegionBytesV1(mBits).
func InitV1(region []byte, mBits uint32, k uint8) error {
	if mBits == 0 {
		return ErrBadMBits
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}
	clear(region[:need])
	return EncodeHeaderV1(region, HeaderV1{K: k, MBits: mBits})
}

// InsertV1 adds anchor to the filter and increments NInserted.
func InsertV1(region []byte, anchor []byte) error {
	h, bitset, err := open(region, anchor)
	if err != nil {
		return err
	}
	h1, h2 := probes(anchor)
	for i := uint64(0); i < uint64(h.K); i++ {
		j := (h1 + i*h2) % uint64(h.MBits)
		bitset[j>>3] |= 1 << (j & 7)
	}
	h.NInserted++
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 returns false only if anchor was never inserted.
func MaybeContainsV1(region []byte, anchor []byte) (bool, error) {
	h, bitset, err := open(region, anchor)
	if err != nil {
		return false, err
	}
	h1, h2 := probes(anchor)
	for i := uint64(0); i < uint64(h.K); i++ {
		j := (h1 + i*h2) % uint64(h.MBits)
		if bitset[j>>3]&(1<<(j&7)) == 0 {
			return false, nil
		}
	}
	return true, nil
}

func open(region []byte, anchor []byte) (HeaderV1, []byte, error) {
	if len(anchor) != ElemBytes {
		return HeaderV1{}, nil, ErrBadElemSize
	}
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	if !ok {
		return HeaderV1{}, nil, ErrNotInitialized
	}
	return h, region[HeaderBytesV1 : uint64(HeaderBytesV1)+uint64(BitsetBytesV1(h.MBits))], nil
}

func probes(anchor []byte) (h1, h2 uint64) {
	lanes := hashers.Twox128(anchor)
	h1 = readU64LE(lanes[0:8])
	h2 = readU64LE(lanes[8:16]) | 1
	return h1, h2
}
