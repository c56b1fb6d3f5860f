// Package bridge adapts the storage key and codec primitives for callers in
// another process or language.
//
// Raw (data, length) pairs are validated once, here, and copied into an owned
// Buffer. Hasher names are parsed here into hashers.Kind. The core packages
// never see unvalidated input and never log; this package logs through the
// injected logger.
//
// The entry points mirror the foreign interface they replace:
//
//	ExpectU8, ExpectU16, ExpectU32, ExpectU64, ExpectBool,
//	ExpectOptionU32, ExpectOptionBool      decode and compare with an expectation
//	StorageKeyForValue, StorageKeyForMap,
//	StorageKeyForDoubleMap                 derive a key, returned as lowercase hex
//	ServeCBOR                              one CBOR encoded storagekey.Request in,
//	                                       one CBOR encoded storagekey.Response out
//
// Failures are returned as errors scoped to the single call. Nothing here
// terminates the process.
package bridge
