package storagekey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
)

var (
	ErrParamSource = errors.New("storagekey: a parameter must have exactly one of data, hex, or type and value")
	ErrParamHex    = errors.New("storagekey: parameter hex is invalid")
)

// Request is the boundary form of a key derivation. Hasher names are plain
// text here and are parsed into hashers.Kind by Resolve.
type Request struct {
	Namespace string         `cbor:"namespace" yaml:"namespace"`
	Item      string         `cbor:"item" yaml:"item"`
	Params    []RequestParam `cbor:"params,omitempty" yaml:"params,omitempty"`
}

// RequestParam carries one parameter as raw bytes, as hex text, or as a typed
// value to be encoded. Raw bytes are used when neither Hex nor Type is set,
// which allows an empty parameter. A Value without a Type is rejected.
type RequestParam struct {
	Hasher string `cbor:"hasher" yaml:"hasher"`
	Data   []byte `cbor:"data,omitempty" yaml:"-"`
	Hex    string `cbor:"hex,omitempty" yaml:"hex,omitempty"`
	Type   string `cbor:"type,omitempty" yaml:"type,omitempty"`
	Value  string `cbor:"value,omitempty" yaml:"value,omitempty"`
}

// Resolve parses hasher names and produces the encoded parameters.
// opts configure the encoding of typed values.
func (r Request) Resolve(opts ...scale.Option) ([]Param, error) {
	params := make([]Param, 0, len(r.Params))
	for i, rp := range r.Params {
		p, err := rp.resolve(opts...)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		params = append(params, p)
	}
	return params, nil
}

// Build resolves r and derives its key.
func (r Request) Build(opts ...scale.Option) (Key, error) {
	params, err := r.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	return Build(r.Namespace, r.Item, params...)
}

func (rp RequestParam) resolve(opts ...scale.Option) (Param, error) {
	kind, err := hashers.ParseKind(rp.Hasher)
	if err != nil {
		return Param{}, err
	}

	hasHex := rp.Hex != ""
	hasType := rp.Type != ""
	if (hasHex && hasType) || (len(rp.Data) > 0 && (hasHex || hasType)) || (rp.Value != "" && !hasType) {
		return Param{}, ErrParamSource
	}

	switch {
	case hasType:
		t, err := scale.ParseType(rp.Type)
		if err != nil {
			return Param{}, err
		}
		v, err := scale.ParseValue(t, rp.Value)
		if err != nil {
			return Param{}, err
		}
		return TypedParam(v, kind, opts...)
	case hasHex:
		data, err := hex.DecodeString(strings.TrimPrefix(rp.Hex, "0x"))
		if err != nil {
			return Param{}, fmt.Errorf("%w: %v", ErrParamHex, err)
		}
		return NewParam(data, kind), nil
	default:
		return NewParam(rp.Data, kind), nil
	}
}
