package scale

import (
	"fmt"
	"math/bits"
)

// Compact integers carry their mode in the two least significant bits of the
// first byte:
//
//	0b00  single byte      value < 2^6,  value << 2
//	0b01  two byte LE      value < 2^14, value << 2 | 0b01
//	0b10  four byte LE     value < 2^30, value << 2 | 0b10
//	0b11  big integer      (n - 4) << 2 | 0b11, then n bytes LE, 4 <= n
//
// Only values that fit in uint64 are supported, so n <= 8. Encodings that do
// not use the shortest mode are rejected.
const (
	compactSingleMax = 1<<6 - 1
	compactTwoMax    = 1<<14 - 1
	compactFourMax   = 1<<30 - 1

	compactModeMask = 0b11
	compactMaxBytes = 8
)

func appendCompact(dst []byte, v uint64) []byte {
	switch {
	case v <= compactSingleMax:
		return append(dst, byte(v<<2))
	case v <= compactTwoMax:
		return appendU16LE(dst, uint16(v<<2|0b01))
	case v <= compactFourMax:
		return appendU32LE(dst, uint32(v<<2|0b10))
	default:
		n := (bits.Len64(v) + 7) / 8
		dst = append(dst, byte((n-4)<<2|0b11))
		for i := 0; i < n; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

func (d *decoder) decodeCompact() (uint64, error) {
	start := d.off
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	first := b[0]

	switch first & compactModeMask {
	case 0b00:
		return uint64(first >> 2), nil
	case 0b01:
		rest, err := d.next(1)
		if err != nil {
			d.off = start
			return 0, err
		}
		v := uint64(readU16LE([]byte{first, rest[0]}) >> 2)
		if v <= compactSingleMax {
			return 0, fmt.Errorf("%w: %d in two byte mode", ErrNonCanonicalCompact, v)
		}
		return v, nil
	case 0b10:
		rest, err := d.next(3)
		if err != nil {
			d.off = start
			return 0, err
		}
		v := uint64(readU32LE([]byte{first, rest[0], rest[1], rest[2]}) >> 2)
		if v <= compactTwoMax {
			return 0, fmt.Errorf("%w: %d in four byte mode", ErrNonCanonicalCompact, v)
		}
		return v, nil
	default:
		n := int(first>>2) + 4
		if n > compactMaxBytes {
			return 0, fmt.Errorf("%w: compact of %d bytes exceeds u64", ErrValueRange, n)
		}
		rest, err := d.next(n)
		if err != nil {
			d.off = start
			return 0, err
		}
		if rest[n-1] == 0 {
			return 0, fmt.Errorf("%w: big integer mode with a zero high byte", ErrNonCanonicalCompact)
		}
		var v uint64
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(rest[i])
		}
		if v <= compactFourMax {
			return 0, fmt.Errorf("%w: %d in big integer mode", ErrNonCanonicalCompact, v)
		}
		return v, nil
	}
}
