package storagekey

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Response is the boundary reply to a Request. Exactly one of Key and Error
// is set.
type Response struct {
	Key   string `cbor:"key,omitempty"`
	Error string `cbor:"error,omitempty"`
}

// Core deterministic encoding: the same request always produces the same bytes.
var encMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// Unknown fields are ignored for forward compatibility.
var decMode = sync.OnceValues(func() (cbor.DecMode, error) {
	return cbor.DecOptions{}.DecMode()
})

func marshalCBOR(v any) ([]byte, error) {
	em, err := encMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(v)
}

func unmarshalCBOR(data []byte, v any) error {
	dm, err := decMode()
	if err != nil {
		return err
	}
	return dm.Unmarshal(data, v)
}

func MarshalRequestCBOR(r Request) ([]byte, error) { return marshalCBOR(r) }

func UnmarshalRequestCBOR(data []byte) (Request, error) {
	var r Request
	if err := unmarshalCBOR(data, &r); err != nil {
		return Request{}, err
	}
	return r, nil
}

func MarshalResponseCBOR(r Response) ([]byte, error) { return marshalCBOR(r) }

func UnmarshalResponseCBOR(data []byte) (Response, error) {
	var r Response
	if err := unmarshalCBOR(data, &r); err != nil {
		return Response{}, err
	}
	return r, nil
}

// UnmarshalRequestsCBOR decodes a CBOR array of requests.
func UnmarshalRequestsCBOR(data []byte) ([]Request, error) {
	var rs []Request
	if err := unmarshalCBOR(data, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func MarshalRequestsCBOR(rs []Request) ([]byte, error) { return marshalCBOR(rs) }
