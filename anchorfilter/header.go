package anchorfilter

// DecodeHeaderV1 decodes the header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	if readU32LE(region[0:4]) == 0 {
		return HeaderV1{}, false, nil
	}
	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.K = region[5]
	h.MBits = readU32LE(region[8:12])
	h.NInserted = readU32LE(region[12:16])
	if h.K == 0 {
		return HeaderV1{}, false, ErrBadK
	}
	if h.MBits == 0 {
		return HeaderV1{}, false, ErrBadMBits
	}
	if uint64(len(region)) < RegionBytesV1(h.MBits) {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	return h, true, nil
}

func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.K == 0 {
		return ErrBadK
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}
	copy(region[0:4], MagicV1)
	region[4] = VersionV1
	region[5] = h.K
	region[6], region[7] = 0, 0
	writeU32LE(region[8:12], h.MBits)
	writeU32LE(region[12:16], h.NInserted)
	return nil
}
