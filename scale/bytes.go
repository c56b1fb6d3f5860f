package scale

import "encoding/binary"

func readU16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func readU32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func readU64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func appendU16LE(dst []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(dst, v) }
func appendU32LE(dst []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(dst, v) }
func appendU64LE(dst []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(dst, v) }
