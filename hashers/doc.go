package hashers

/*

# Storage hashers

This package provides the hash functions used to derive storage keys. They are
pure functions over byte slices with fixed, explicit output layouts.

It follows the same "functional primitives" style as the other packages in this
module:

- small, composable functions
- explicit byte layouts
- no hidden state; every call allocates its own digest

## Functions

	Prefix128(b)  = twox64(b, seed=0)_le8 || twox64(b, seed=1)_le8          16 bytes
	Identity(b)   = b                                                       len(b)
	Concat64(b)   = twox64(b, seed=0)_le8 || b                              8 + len(b)
	Concat128(b)  = blake2b_128(b) || b                                     16 + len(b)

Supplementary opaque hashers, available for parameters but not recoverable:

	Blake2b128(b) = blake2b_128(b)                                          16 bytes
	Blake2b256(b) = blake2b_256(b)                                          32 bytes
	Twox256(b)    = twox64 seeds 0..3, each le8                             32 bytes

twox64 is xxHash64. The digest is written least significant byte first.

## Selection

Prefix128 anchors namespace and item identifiers only. It is never selectable
for a parameter position: ParseKind does not recognise a name for it and
CheckParamKind rejects it.

Parameter hashers are selected by their literal names:

	identity, twox64_concat, blake2_128_concat, blake2_128, blake2_256, twox256

Any other name is ErrUnsupportedHasher. Names are parsed once, at the
boundary, into a Kind.

*/
