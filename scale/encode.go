package scale

import "fmt"

// Encode returns the wire form of v.
func Encode(v Value, opts ...Option) ([]byte, error) {
	return AppendEncode(nil, v, opts...)
}

// AppendEncode appends the wire form of v to dst. On error dst is returned
// unmodified.
func AppendEncode(dst []byte, v Value, opts ...Option) ([]byte, error) {
	if err := v.typ.Validate(); err != nil {
		return dst, err
	}
	out, err := appendValue(dst, v, NewCodecOptions(opts...))
	if err != nil {
		return dst, err
	}
	return out, nil
}

func appendValue(dst []byte, v Value, opts CodecOptions) ([]byte, error) {
	switch v.typ.Kind {
	case KindU8:
		return append(dst, byte(v.num)), nil
	case KindU16:
		return appendU16LE(dst, uint16(v.num)), nil
	case KindU32:
		return appendU32LE(dst, uint32(v.num)), nil
	case KindU64:
		return appendU64LE(dst, v.num), nil
	case KindBool:
		if v.flag {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case KindCompact:
		return appendCompact(dst, v.num), nil
	case KindOption:
		return appendOption(dst, v, opts)
	default:
		return dst, fmt.Errorf("%w: kind=%d", ErrUnknownType, v.typ.Kind)
	}
}

func appendOption(dst []byte, v Value, opts CodecOptions) ([]byte, error) {
	if v.elem == nil {
		return append(dst, 0), nil
	}
	if v.elem.typ.Kind == KindBool && opts.OptionBool == OptionBoolCompact {
		if v.elem.flag {
			return append(dst, 1), nil
		}
		return append(dst, 2), nil
	}
	return appendValue(append(dst, 1), *v.elem, opts)
}
