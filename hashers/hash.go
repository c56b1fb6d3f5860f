package hashers

import "fmt"

// Prefix128 computes the 16 byte anchor for a namespace or item identifier.
func Prefix128(data []byte) [Prefix128Bytes]byte {
	return Twox128(data)
}

// Identity returns a copy of data.
func Identity(data []byte) []byte {
	return append([]byte(nil), data...)
}

// Concat64 computes:
//
//	twox64(data)_le8 || data
func Concat64(data []byte) []byte {
	out := make([]byte, 0, Twox64Bytes+len(data))
	return appendConcat64(out, data)
}

// Concat128 computes:
//
//	blake2b_128(data) || data
func Concat128(data []byte) []byte {
	out := make([]byte, 0, Blake2b128Bytes+len(data))
	return appendConcat128(out, data)
}

func appendConcat64(dst, data []byte) []byte {
	h := Twox64(data)
	dst = append(dst, h[:]...)
	return append(dst, data...)
}

func appendConcat128(dst, data []byte) []byte {
	h := Blake2b128(data)
	dst = append(dst, h[:]...)
	return append(dst, data...)
}

// Hash applies the hasher selected by kind to data and returns a fresh slice.
func Hash(kind Kind, data []byte) ([]byte, error) {
	n, err := OutputBytes(kind, len(data))
	if err != nil {
		return nil, err
	}
	return AppendHash(make([]byte, 0, n), kind, data)
}

// AppendHash appends the output of the hasher selected by kind to dst.
//
// dst is returned unmodified, along with ErrUnsupportedHasher, if kind is not
// a known selector.
func AppendHash(dst []byte, kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case KindPrefix128:
		h := Prefix128(data)
		return append(dst, h[:]...), nil
	case KindIdentity:
		return append(dst, data...), nil
	case KindConcat64:
		return appendConcat64(dst, data), nil
	case KindConcat128:
		return appendConcat128(dst, data), nil
	case KindBlake2b128:
		h := Blake2b128(data)
		return append(dst, h[:]...), nil
	case KindBlake2b256:
		h := Blake2b256(data)
		return append(dst, h[:]...), nil
	case KindTwox256:
		h := Twox256(data)
		return append(dst, h[:]...), nil
	default:
		return dst, fmt.Errorf("%w: kind=%d", ErrUnsupportedHasher, kind)
	}
}

// OutputBytes returns the number of bytes kind produces for an input of
// dataLen bytes.
func OutputBytes(kind Kind, dataLen int) (int, error) {
	switch kind {
	case KindPrefix128:
		return Prefix128Bytes, nil
	case KindIdentity:
		return dataLen, nil
	case KindConcat64:
		return Twox64Bytes + dataLen, nil
	case KindConcat128:
		return Blake2b128Bytes + dataLen, nil
	case KindBlake2b128:
		return Blake2b128Bytes, nil
	case KindBlake2b256:
		return Blake2b256Bytes, nil
	case KindTwox256:
		return Twox256Bytes, nil
	default:
		return 0, fmt.Errorf("%w: kind=%d", ErrUnsupportedHasher, kind)
	}
}
