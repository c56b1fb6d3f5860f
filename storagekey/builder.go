package storagekey

import (
	"fmt"

	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
)

// Param is one ordered parameter of a key: its raw encoded bytes and the
// hasher selected for its position.
type Param struct {
	Data   []byte
	Hasher hashers.Kind
}

// NewParam returns a Param over raw, already encoded, bytes.
func NewParam(data []byte, hasher hashers.Kind) Param {
	return Param{Data: data, Hasher: hasher}
}

// TypedParam encodes v and returns it as a Param.
func TypedParam(v scale.Value, hasher hashers.Kind, opts ...scale.Option) (Param, error) {
	data, err := scale.Encode(v, opts...)
	if err != nil {
		return Param{}, err
	}
	return Param{Data: data, Hasher: hasher}, nil
}

// Anchor computes:
//
//	Prefix128(namespace) || Prefix128(item)
func Anchor(namespace, item string) Key {
	return appendAnchor(make([]byte, 0, AnchorBytes), namespace, item)
}

func appendAnchor(dst []byte, namespace, item string) []byte {
	ns := hashers.Prefix128([]byte(namespace))
	it := hashers.Prefix128([]byte(item))
	dst = append(dst, ns[:]...)
	return append(dst, it[:]...)
}

// Build derives the key for namespace, item and the ordered params.
//
// An unsupported or prefix hasher in any position fails the whole call.
func Build(namespace, item string, params ...Param) (Key, error) {
	size := AnchorBytes
	for i, p := range params {
		if err := hashers.CheckParamKind(p.Hasher); err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		n, err := hashers.OutputBytes(p.Hasher, len(p.Data))
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		size += n
	}

	key := appendAnchor(make([]byte, 0, size), namespace, item)
	for i, p := range params {
		var err error
		key, err = hashers.AppendHash(key, p.Hasher, p.Data)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
	}
	return Key(key), nil
}

// ForValue derives the key of a single value entry.
func ForValue(namespace, item string) Key {
	return Anchor(namespace, item)
}

// ForMap derives the key of a map entry.
func ForMap(namespace, item string, param Param) (Key, error) {
	return Build(namespace, item, param)
}

// ForDoubleMap derives the key of a double map entry.
func ForDoubleMap(namespace, item string, first, second Param) (Key, error) {
	return Build(namespace, item, first, second)
}
