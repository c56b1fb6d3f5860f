package hashers

import "encoding/binary"

func writeU64LE(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }
