package anchorfilter

/*

# Storage item prefilter

A single Bloom filter over storage key anchors, the 32 byte
Prefix128(namespace) ++ Prefix128(item) that starts every key of a storage
item. A snapshot keeps one filter so that lookups for items it never stored
can be answered without touching the key space.

- If the filter says "definitely not present", no key of that item is stored.
- If the filter says "maybe present", keys of the item may or may not be
  stored.

The filter is an I/O optimization only. It proves nothing.

## Region layout

	+----------------------+  16B header
	| HeaderV1             |
	+----------------------+  ceil(mBits/8) bytes
	| bitset               |
	+----------------------+

Header, integers little endian:

	[0:4]   magic "SKF1"
	[4]     version (1)
	[5]     k, the number of probes
	[6:8]   reserved, zero
	[8:12]  mBits
	[12:16] nInserted, a best effort counter

## Probes

The two probe hashes are the lanes of Twox128 over the anchor:

	h1 = lane 0, h2 = lane 1 (forced odd)
	bit_i = (h1 + i*h2) mod mBits, for i in [0, k)

Bit j lives in byte j>>3 at position j&7, least significant bit first.

*/
