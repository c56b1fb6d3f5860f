package hashers

import "fmt"

// ParseKind maps a literal parameter hasher name to its Kind.
//
// The namespace/item prefix hasher has no parseable name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case NameIdentity:
		return KindIdentity, nil
	case NameConcat64:
		return KindConcat64, nil
	case NameConcat128:
		return KindConcat128, nil
	case NameBlake2b128:
		return KindBlake2b128, nil
	case NameBlake2b256:
		return KindBlake2b256, nil
	case NameTwox256:
		return KindTwox256, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedHasher, name)
	}
}

// CheckParamKind returns nil if kind may hash a parameter.
func CheckParamKind(kind Kind) error {
	switch kind {
	case KindIdentity, KindConcat64, KindConcat128, KindBlake2b128, KindBlake2b256, KindTwox256:
		return nil
	case KindPrefix128:
		return ErrPrefixAsParam
	default:
		return fmt.Errorf("%w: kind=%d", ErrUnsupportedHasher, kind)
	}
}

// Concatenating reports whether the hasher output ends with its input, so the
// original parameter is recoverable from a key.
func (k Kind) Concatenating() bool {
	return k == KindIdentity || k == KindConcat64 || k == KindConcat128
}

func (k Kind) String() string {
	switch k {
	case KindPrefix128:
		return namePrefix128
	case KindIdentity:
		return NameIdentity
	case KindConcat64:
		return NameConcat64
	case KindConcat128:
		return NameConcat128
	case KindBlake2b128:
		return NameBlake2b128
	case KindBlake2b256:
		return NameBlake2b256
	case KindTwox256:
		return NameTwox256
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler for parameter hashers.
func (k Kind) MarshalText() ([]byte, error) {
	if err := CheckParamKind(k); err != nil {
		return nil, err
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
