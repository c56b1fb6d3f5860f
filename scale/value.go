package scale

import (
	"fmt"
	"strconv"
)

// Value is a decoded or to-be-encoded wire value of a single Type.
//
// The zero Value has an invalid type and does not encode.
type Value struct {
	typ  Type
	num  uint64
	flag bool
	elem *Value // Some payload, nil for None
}

func U8(v uint8) Value       { return Value{typ: TypeU8, num: uint64(v)} }
func U16(v uint16) Value     { return Value{typ: TypeU16, num: uint64(v)} }
func U32(v uint32) Value     { return Value{typ: TypeU32, num: uint64(v)} }
func U64(v uint64) Value     { return Value{typ: TypeU64, num: v} }
func Compact(v uint64) Value { return Value{typ: TypeCompact, num: v} }
func Bool(v bool) Value      { return Value{typ: TypeBool, flag: v} }

// Some wraps v in an option. Wrapping an option produces a value whose type
// fails Validate, it is rejected when encoded.
func Some(v Value) Value {
	e := v
	return Value{typ: OptionOf(v.typ), elem: &e}
}

// None returns the empty option over elem.
func None(elem Type) Value {
	return Value{typ: OptionOf(elem)}
}

func (v Value) Type() Type { return v.typ }

// Uint returns the value of an unsigned integer or compact value.
func (v Value) Uint() (uint64, bool) {
	if !v.typ.Kind.unsigned() {
		return 0, false
	}
	return v.num, true
}

// Bool returns the value of a boolean.
func (v Value) Bool() (bool, bool) {
	if v.typ.Kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// Elem returns the payload of Some. ok is false for None and for non options.
func (v Value) Elem() (Value, bool) {
	if v.typ.Kind != KindOption || v.elem == nil {
		return Value{}, false
	}
	return *v.elem, true
}

// IsNone reports whether v is an empty option.
func (v Value) IsNone() bool {
	return v.typ.Kind == KindOption && v.elem == nil
}

// Equal reports whether v and o have the same type and value.
func (v Value) Equal(o Value) bool {
	if !v.typ.Equal(o.typ) {
		return false
	}
	switch v.typ.Kind {
	case KindBool:
		return v.flag == o.flag
	case KindOption:
		if v.elem == nil || o.elem == nil {
			return v.elem == nil && o.elem == nil
		}
		return v.elem.Equal(*o.elem)
	default:
		return v.num == o.num
	}
}

func (v Value) String() string {
	switch v.typ.Kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindOption:
		if v.elem == nil {
			return "None"
		}
		return "Some(" + v.elem.String() + ")"
	case KindInvalid:
		return "<invalid>"
	default:
		return strconv.FormatUint(v.num, 10)
	}
}

// uintOf builds an unsigned value of kind k, checking range.
func uintOf(k Kind, n uint64) (Value, error) {
	var limit uint64
	switch k {
	case KindU8:
		limit = 1<<8 - 1
	case KindU16:
		limit = 1<<16 - 1
	case KindU32:
		limit = 1<<32 - 1
	case KindU64, KindCompact:
		limit = ^uint64(0)
	default:
		return Value{}, fmt.Errorf("%w: %s is not unsigned", ErrTypeMismatch, k)
	}
	if n > limit {
		return Value{}, fmt.Errorf("%w: %d does not fit %s", ErrValueRange, n, k)
	}
	return Value{typ: Type{Kind: k}, num: n}, nil
}
