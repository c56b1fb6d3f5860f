package scale

import (
	"errors"
	"fmt"
)

// Kind identifies a wire type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindBool
	KindCompact
	KindOption
)

// Type describes a wire type. Elem is set only for KindOption.
type Type struct {
	Kind Kind
	Elem *Type
}

var (
	TypeU8      = Type{Kind: KindU8}
	TypeU16     = Type{Kind: KindU16}
	TypeU32     = Type{Kind: KindU32}
	TypeU64     = Type{Kind: KindU64}
	TypeBool    = Type{Kind: KindBool}
	TypeCompact = Type{Kind: KindCompact}
)

var (
	ErrTruncatedInput             = errors.New("scale: truncated input")
	ErrInvalidBooleanDiscriminant = errors.New("scale: invalid boolean discriminant")
	ErrTrailingBytes              = errors.New("scale: trailing bytes")
	ErrAmbiguousOptionEncoding    = errors.New("scale: ambiguous option encoding")
	ErrInvalidOptionDiscriminant  = errors.New("scale: invalid option discriminant")
	ErrNestedOption               = errors.New("scale: nested option is not supported")
	ErrUnknownType                = errors.New("scale: unknown type")
	ErrNonCanonicalCompact        = errors.New("scale: non canonical compact encoding")
	ErrValueRange                 = errors.New("scale: value out of range")
	ErrInvalidText                = errors.New("scale: invalid value text")
	ErrTypeMismatch               = errors.New("scale: value type mismatch")
)

// OptionOf returns the type Option<elem>.
//
// The result is only valid if elem is not itself an option, see Validate.
func OptionOf(elem Type) Type {
	e := elem
	return Type{Kind: KindOption, Elem: &e}
}

// Validate checks that t is a supported type. Options nest exactly one level.
func (t Type) Validate() error {
	switch t.Kind {
	case KindU8, KindU16, KindU32, KindU64, KindBool, KindCompact:
		if t.Elem != nil {
			return fmt.Errorf("%w: %s has an element type", ErrUnknownType, t.Kind)
		}
		return nil
	case KindOption:
		if t.Elem == nil {
			return fmt.Errorf("%w: option without element type", ErrUnknownType)
		}
		if t.Elem.Kind == KindOption {
			return ErrNestedOption
		}
		return t.Elem.Validate()
	default:
		return fmt.Errorf("%w: kind=%d", ErrUnknownType, t.Kind)
	}
}

// FixedWidth returns the encoded width of a scalar fixed width type.
func (t Type) FixedWidth() (int, bool) {
	switch t.Kind {
	case KindU8, KindBool:
		return 1, true
	case KindU16:
		return 2, true
	case KindU32:
		return 4, true
	case KindU64:
		return 8, true
	default:
		return 0, false
	}
}

// Equal reports whether t and o describe the same type.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Elem == nil || o.Elem == nil {
		return t.Elem == nil && o.Elem == nil
	}
	return t.Elem.Equal(*o.Elem)
}

func (t Type) String() string {
	if t.Kind == KindOption && t.Elem != nil {
		return "Option<" + t.Elem.String() + ">"
	}
	return t.Kind.String()
}

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindBool:
		return "bool"
	case KindCompact:
		return "compact"
	case KindOption:
		return "option"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) unsigned() bool {
	return k == KindU8 || k == KindU16 || k == KindU32 || k == KindU64 || k == KindCompact
}
