package scale

import "fmt"

type decoder struct {
	data []byte
	off  int
	opts CodecOptions
}

// Decode decodes a single value of type t from the front of data.
//
// It returns the value and the number of bytes consumed. On error nothing is
// considered consumed.
func Decode(data []byte, t Type, opts ...Option) (Value, int, error) {
	if err := t.Validate(); err != nil {
		return Value{}, 0, err
	}
	d := decoder{data: data, opts: NewCodecOptions(opts...)}

	v, err := d.decode(t)
	if err != nil {
		return Value{}, 0, err
	}
	if d.opts.FullConsumption && d.off != len(data) {
		return Value{}, 0, fmt.Errorf(
			"%w: %s used %d of %d bytes", ErrTrailingBytes, t, d.off, len(data))
	}
	return v, d.off, nil
}

// next returns the next n bytes, or ErrTruncatedInput without advancing.
func (d *decoder) next(n int) ([]byte, error) {
	remaining := len(d.data) - d.off
	if remaining < n {
		return nil, fmt.Errorf(
			"%w: need %d bytes at offset %d, have %d", ErrTruncatedInput, n, d.off, remaining)
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) decode(t Type) (Value, error) {
	switch t.Kind {
	case KindU8:
		b, err := d.next(1)
		if err != nil {
			return Value{}, err
		}
		return U8(b[0]), nil
	case KindU16:
		b, err := d.next(2)
		if err != nil {
			return Value{}, err
		}
		return U16(readU16LE(b)), nil
	case KindU32:
		b, err := d.next(4)
		if err != nil {
			return Value{}, err
		}
		return U32(readU32LE(b)), nil
	case KindU64:
		b, err := d.next(8)
		if err != nil {
			return Value{}, err
		}
		return U64(readU64LE(b)), nil
	case KindBool:
		b, err := d.next(1)
		if err != nil {
			return Value{}, err
		}
		v, err := boolFromByte(b[0])
		if err != nil {
			return Value{}, err
		}
		return Bool(v), nil
	case KindCompact:
		n, err := d.decodeCompact()
		if err != nil {
			return Value{}, err
		}
		return Compact(n), nil
	case KindOption:
		return d.decodeOption(*t.Elem)
	default:
		return Value{}, fmt.Errorf("%w: kind=%d", ErrUnknownType, t.Kind)
	}
}

func boolFromByte(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrInvalidBooleanDiscriminant, b)
	}
}

func (d *decoder) decodeOption(elem Type) (Value, error) {
	b, err := d.next(1)
	if err != nil {
		return Value{}, err
	}
	disc := b[0]

	if elem.Kind == KindBool && d.opts.OptionBool == OptionBoolCompact {
		switch disc {
		case 0:
			return None(elem), nil
		case 1:
			return Some(Bool(true)), nil
		case 2:
			return Some(Bool(false)), nil
		default:
			return Value{}, fmt.Errorf("%w: 0x%02x", ErrInvalidOptionDiscriminant, disc)
		}
	}

	switch disc {
	case 0:
		return None(elem), nil
	case 1:
		inner, err := d.decode(elem)
		if err != nil {
			return Value{}, err
		}
		return Some(inner), nil
	case 2:
		if elem.Kind == KindBool {
			// 0x02 is Some(false) under the compact scheme only.
			return Value{}, fmt.Errorf(
				"%w: discriminant 0x02 for Option<bool> under the strict scheme", ErrAmbiguousOptionEncoding)
		}
		return Value{}, fmt.Errorf("%w: 0x%02x", ErrInvalidOptionDiscriminant, disc)
	default:
		return Value{}, fmt.Errorf("%w: 0x%02x", ErrInvalidOptionDiscriminant, disc)
	}
}

func DecodeU8(data []byte, opts ...Option) (uint8, error) {
	n, err := decodeUint(data, TypeU8, opts...)
	return uint8(n), err
}

func DecodeU16(data []byte, opts ...Option) (uint16, error) {
	n, err := decodeUint(data, TypeU16, opts...)
	return uint16(n), err
}

func DecodeU32(data []byte, opts ...Option) (uint32, error) {
	n, err := decodeUint(data, TypeU32, opts...)
	return uint32(n), err
}

func DecodeU64(data []byte, opts ...Option) (uint64, error) {
	return decodeUint(data, TypeU64, opts...)
}

func DecodeCompact(data []byte, opts ...Option) (uint64, error) {
	return decodeUint(data, TypeCompact, opts...)
}

func DecodeBool(data []byte, opts ...Option) (bool, error) {
	v, _, err := Decode(data, TypeBool, opts...)
	if err != nil {
		return false, err
	}
	b, _ := v.Bool()
	return b, nil
}

// DecodeOptionU32 returns the payload and whether it was present.
func DecodeOptionU32(data []byte, opts ...Option) (uint32, bool, error) {
	elem, ok, err := decodeOption(data, TypeU32, opts...)
	if err != nil || !ok {
		return 0, false, err
	}
	n, _ := elem.Uint()
	return uint32(n), true, nil
}

// DecodeOptionBool returns the payload and whether it was present, using the
// configured Option<bool> scheme. Under the default strict scheme [1,1] is
// Some(true) and the compact-only discriminant 2 is ErrAmbiguousOptionEncoding.
func DecodeOptionBool(data []byte, opts ...Option) (bool, bool, error) {
	elem, ok, err := decodeOption(data, TypeBool, opts...)
	if err != nil || !ok {
		return false, false, err
	}
	b, _ := elem.Bool()
	return b, true, nil
}

func decodeUint(data []byte, t Type, opts ...Option) (uint64, error) {
	v, _, err := Decode(data, t, opts...)
	if err != nil {
		return 0, err
	}
	n, _ := v.Uint()
	return n, nil
}

func decodeOption(data []byte, elem Type, opts ...Option) (Value, bool, error) {
	v, _, err := Decode(data, OptionOf(elem), opts...)
	if err != nil {
		return Value{}, false, err
	}
	inner, ok := v.Elem()
	return inner, ok, nil
}
