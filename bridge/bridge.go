package bridge

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
	"github.com/forestrie/go-storagekey/storagekey"
)

type Bridge struct {
	log  logger.Logger
	opts Options
}

func New(log logger.Logger, opts ...Option) *Bridge {
	b := &Bridge{log: log}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

func (b *Bridge) ExpectU8(buf Buffer, want uint8) error {
	got, err := scale.DecodeU8(buf.Bytes(), b.opts.Codec...)
	return expect(b, "u8", buf, got, want, err)
}

func (b *Bridge) ExpectU16(buf Buffer, want uint16) error {
	got, err := scale.DecodeU16(buf.Bytes(), b.opts.Codec...)
	return expect(b, "u16", buf, got, want, err)
}

func (b *Bridge) ExpectU32(buf Buffer, want uint32) error {
	got, err := scale.DecodeU32(buf.Bytes(), b.opts.Codec...)
	return expect(b, "u32", buf, got, want, err)
}

func (b *Bridge) ExpectU64(buf Buffer, want uint64) error {
	got, err := scale.DecodeU64(buf.Bytes(), b.opts.Codec...)
	return expect(b, "u64", buf, got, want, err)
}

func (b *Bridge) ExpectBool(buf Buffer, want bool) error {
	got, err := scale.DecodeBool(buf.Bytes(), b.opts.Codec...)
	return expect(b, "bool", buf, got, want, err)
}

// ExpectOptionU32 expects Some(inner) when present is true, otherwise None.
// inner is ignored for None.
func (b *Bridge) ExpectOptionU32(buf Buffer, inner uint32, present bool) error {
	v, ok, err := scale.DecodeOptionU32(buf.Bytes(), b.opts.Codec...)
	return expect(b, "Option<u32>", buf, optional[uint32]{v, ok}, optional[uint32]{inner, present}.norm(), err)
}

// ExpectOptionBool is ExpectOptionU32 for Option<bool>, under the configured
// Option<bool> scheme.
func (b *Bridge) ExpectOptionBool(buf Buffer, inner bool, present bool) error {
	v, ok, err := scale.DecodeOptionBool(buf.Bytes(), b.opts.Codec...)
	return expect(b, "Option<bool>", buf, optional[bool]{v, ok}, optional[bool]{inner, present}.norm(), err)
}

type optional[T comparable] struct {
	v  T
	ok bool
}

func (o optional[T]) norm() optional[T] {
	if !o.ok {
		var zero T
		return optional[T]{zero, false}
	}
	return o
}

func (o optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

func expect[T comparable](b *Bridge, typ string, buf Buffer, got, want T, err error) error {
	if err != nil {
		b.log.Infof("decode %s from %x: %v", typ, buf.Bytes(), err)
		return err
	}
	if got != want {
		b.log.Infof("decode %s from %x: got %v, want %v", typ, buf.Bytes(), got, want)
		return fmt.Errorf("%w: %s got %v, want %v", ErrExpectationMismatch, typ, got, want)
	}
	return nil
}

// StorageKeyForValue returns the hex key of a single value entry.
func (b *Bridge) StorageKeyForValue(namespace, item string) string {
	return storagekey.ForValue(namespace, item).Hex()
}

// StorageKeyForMap returns the hex key of a map entry. hasher is a literal
// parameter hasher name.
func (b *Bridge) StorageKeyForMap(namespace, item string, param Buffer, hasher string) (string, error) {
	p, err := b.param(param, hasher)
	if err != nil {
		return "", err
	}
	return b.keyHex(namespace, item, p)
}

// StorageKeyForDoubleMap returns the hex key of a double map entry.
func (b *Bridge) StorageKeyForDoubleMap(
	namespace, item string,
	param1 Buffer, hasher1 string,
	param2 Buffer, hasher2 string,
) (string, error) {
	p1, err := b.param(param1, hasher1)
	if err != nil {
		return "", err
	}
	p2, err := b.param(param2, hasher2)
	if err != nil {
		return "", err
	}
	return b.keyHex(namespace, item, p1, p2)
}

func (b *Bridge) param(buf Buffer, hasher string) (storagekey.Param, error) {
	kind, err := hashers.ParseKind(hasher)
	if err != nil {
		b.log.Infof("parameter hasher: %v", err)
		return storagekey.Param{}, err
	}
	return storagekey.NewParam(buf.Bytes(), kind), nil
}

func (b *Bridge) keyHex(namespace, item string, params ...storagekey.Param) (string, error) {
	key, err := storagekey.Build(namespace, item, params...)
	if err != nil {
		b.log.Infof("storage key %s/%s: %v", namespace, item, err)
		return "", err
	}
	return key.Hex(), nil
}

// ServeCBOR handles one CBOR encoded storagekey.Request and returns a CBOR
// encoded storagekey.Response. Request failures are reported in the response;
// the returned error is only for a response that could not be encoded.
func (b *Bridge) ServeCBOR(payload []byte) ([]byte, error) {
	var resp storagekey.Response

	req, err := storagekey.UnmarshalRequestCBOR(payload)
	if err != nil {
		b.log.Infof("cbor request: %v", err)
		resp.Error = KindMalformedRequest
		return storagekey.MarshalResponseCBOR(resp)
	}

	key, err := req.Build(b.opts.Codec...)
	if err != nil {
		b.log.Infof("cbor request %s/%s: %v", req.Namespace, req.Item, err)
		resp.Error = ErrorKind(err)
		return storagekey.MarshalResponseCBOR(resp)
	}
	resp.Key = key.Hex()
	return storagekey.MarshalResponseCBOR(resp)
}
