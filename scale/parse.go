package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseType parses a type name: u8, u16, u32, u64, bool, compact, or
// Option<T> over one of those.
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)

	if inner, ok := optionElemName(name); ok {
		elem, err := ParseType(inner)
		if err != nil {
			return Type{}, err
		}
		if elem.Kind == KindOption {
			return Type{}, fmt.Errorf("%w: %s", ErrNestedOption, name)
		}
		return OptionOf(elem), nil
	}

	switch strings.ToLower(name) {
	case "u8":
		return TypeU8, nil
	case "u16":
		return TypeU16, nil
	case "u32":
		return TypeU32, nil
	case "u64":
		return TypeU64, nil
	case "bool":
		return TypeBool, nil
	case "compact", "compact<u64>":
		return TypeCompact, nil
	default:
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

func optionElemName(name string) (string, bool) {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, "option<") || !strings.HasSuffix(lower, ">") {
		return "", false
	}
	return name[len("option<") : len(name)-1], true
}

// ParseValue parses text as a value of type t.
//
// Integers accept the prefixes understood by strconv.ParseUint with base 0.
// Options accept "none" for None, anything else is parsed as the element.
func ParseValue(t Type, text string) (Value, error) {
	if err := t.Validate(); err != nil {
		return Value{}, err
	}
	text = strings.TrimSpace(text)

	switch t.Kind {
	case KindU8, KindU16, KindU32, KindU64, KindCompact:
		n, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Value{}, fmt.Errorf("%w: %q", ErrValueRange, text)
			}
			return Value{}, fmt.Errorf("%w: %q is not a %s", ErrInvalidText, text, t)
		}
		return uintOf(t.Kind, n)
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a bool", ErrInvalidText, text)
		}
		return Bool(b), nil
	case KindOption:
		if strings.EqualFold(text, "none") {
			return None(*t.Elem), nil
		}
		elem, err := ParseValue(*t.Elem, text)
		if err != nil {
			return Value{}, err
		}
		return Some(elem), nil
	default:
		return Value{}, fmt.Errorf("%w: kind=%d", ErrUnknownType, t.Kind)
	}
}
