// Package scale decodes and encodes the primitive wire values used for
// storage parameters and storage values.
//
// Only fixed width little endian unsigned integers, booleans, compact
// unsigned integers and a single level of Option over those are covered.
//
// # Layout
//
//	u8, bool       1 byte      literal value / 0x00=false, 0x01=true
//	u16, u32, u64  2/4/8 bytes little endian unsigned
//	compact        1,2,4 or 5..9 bytes, mode in the two low bits of byte 0
//	Option<T>      1 + (0 or sizeof(T))
//
// # Option<bool>
//
// Two schemes exist for Option<bool> and a codec uses exactly one of them:
//
//	OptionBoolStrict (default)   0x00 = None, 0x01 b = Some(b), b in {0x00, 0x01}
//	OptionBoolCompact            0x00 = None, 0x01 = Some(true), 0x02 = Some(false)
//
// A strict decoder that meets discriminant 0x02 reports
// ErrAmbiguousOptionEncoding: the byte is only meaningful under the compact
// scheme and is never guessed at. A compact decoder consumes a single byte, so
// {0x01, 0x01} leaves a trailing byte.
//
// # Consumption
//
// Decoding consumes from the front of the buffer. Whether unconsumed bytes are
// an error is a caller decision, see WithFullConsumption.
package scale
