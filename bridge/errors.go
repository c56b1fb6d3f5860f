package bridge

import (
	"errors"

	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
	"github.com/forestrie/go-storagekey/storagekey"
)

var ErrExpectationMismatch = errors.New("bridge: decoded value does not match the expectation")

// Stable error kind names reported across the boundary.
const (
	KindTruncatedInput             = "TruncatedInput"
	KindInvalidBooleanDiscriminant = "InvalidBooleanDiscriminant"
	KindTrailingBytes              = "TrailingBytes"
	KindUnsupportedHasher          = "UnsupportedHasher"
	KindAmbiguousOptionEncoding    = "AmbiguousOptionEncoding"
	KindInvalidOptionDiscriminant  = "InvalidOptionDiscriminant"
	KindUnsupportedType            = "UnsupportedType"
	KindInvalidParameter           = "InvalidParameter"
	KindInvalidBuffer              = "InvalidBuffer"
	KindExpectationMismatch        = "ExpectationMismatch"
	KindMalformedRequest           = "MalformedRequest"
	KindInternal                   = "Internal"
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{scale.ErrTruncatedInput, KindTruncatedInput},
	{scale.ErrInvalidBooleanDiscriminant, KindInvalidBooleanDiscriminant},
	{scale.ErrTrailingBytes, KindTrailingBytes},
	{scale.ErrAmbiguousOptionEncoding, KindAmbiguousOptionEncoding},
	{scale.ErrInvalidOptionDiscriminant, KindInvalidOptionDiscriminant},
	{scale.ErrNonCanonicalCompact, KindInvalidParameter},
	{scale.ErrNestedOption, KindUnsupportedType},
	{scale.ErrUnknownType, KindUnsupportedType},
	{scale.ErrValueRange, KindInvalidParameter},
	{scale.ErrInvalidText, KindInvalidParameter},
	{hashers.ErrUnsupportedHasher, KindUnsupportedHasher},
	{hashers.ErrPrefixAsParam, KindUnsupportedHasher},
	{storagekey.ErrParamSource, KindInvalidParameter},
	{storagekey.ErrParamHex, KindInvalidParameter},
	{ErrNilBuffer, KindInvalidBuffer},
	{ErrBufferLength, KindInvalidBuffer},
	{ErrExpectationMismatch, KindExpectationMismatch},
}

// ErrorKind maps err to its stable boundary name. nil maps to "".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return KindInternal
}
