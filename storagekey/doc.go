package storagekey

/*

# Storage key derivation

A storage key addresses one entry of a key-value backed state store. It is
derived, one way, from a namespace name, an item name, and zero or more ordered
parameters each carrying its own hasher.

## Layout

	+----------------------+  16 bytes  Prefix128(namespace)
	| namespace anchor     |
	+----------------------+  16 bytes  Prefix128(item)
	| item anchor          |
	+----------------------+  hasher_0(param_0)
	| param segment 0      |
	+----------------------+  hasher_1(param_1)
	| param segment 1      |
	+----------------------+  ...

The first 32 bytes are the anchor, identical for every entry of a
namespace/item pair. Zero parameters addresses a single value, one parameter a
map entry, two parameters a double map entry. There is no limit on the
parameter count.

Parameter segments by hasher:

	identity           len(p)        p
	twox64_concat      8 + len(p)    twox64(p) || p
	blake2_128_concat  16 + len(p)   blake2b_128(p) || p
	blake2_128         16            blake2b_128(p)
	blake2_256         32            blake2b_256(p)
	twox256            32            twox256(p)

Parameters are never reordered, deduplicated or trimmed. Empty names are
accepted.

## Text form

Keys are exchanged as lowercase hex, two characters per byte, no separator and
no prefix. ParseKey additionally accepts a leading 0x.

*/
