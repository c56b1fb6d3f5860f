package hashers

import "errors"

const (
	// Twox64Bytes is the digest width of a single xxHash64 lane.
	Twox64Bytes = 8

	// Prefix128Bytes is the width of a namespace or item anchor.
	Prefix128Bytes = 16

	// Blake2b128Bytes is the width of the blake2b digest used by Concat128.
	Blake2b128Bytes = 16

	Blake2b256Bytes = 32
	Twox256Bytes    = 32
)

// Kind selects a hash function. The zero value is not a valid selector.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPrefix128
	KindIdentity
	KindConcat64
	KindConcat128
	KindBlake2b128
	KindBlake2b256
	KindTwox256
)

// Literal selector names, as they appear at the boundary.
const (
	NameIdentity   = "identity"
	NameConcat64   = "twox64_concat"
	NameConcat128  = "blake2_128_concat"
	NameBlake2b128 = "blake2_128"
	NameBlake2b256 = "blake2_256"
	NameTwox256    = "twox256"

	// namePrefix128 is only used for display, it is not parseable.
	namePrefix128 = "twox128"
)

var (
	ErrUnsupportedHasher = errors.New("hashers: unsupported hasher")
	ErrPrefixAsParam     = errors.New("hashers: prefix hasher is not a parameter hasher")
)
