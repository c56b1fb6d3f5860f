package anchorfilter

import "errors"

const (
	// ElemBytes is the element width, a storage key anchor.
	ElemBytes = 32

	HeaderBytesV1 = 16

	MagicV1         = "SKF1"
	VersionV1 uint8 = 1

	// DefaultBitsPerItem and DefaultK give roughly a 1% false positive rate
	// at capacity.
	DefaultBitsPerItem uint64 = 10
	DefaultK           uint8  = 7
)

var (
	ErrBadElemSize    = errors.New("anchorfilter: element must be a 32 byte anchor")
	ErrBadRegionSize  = errors.New("anchorfilter: region buffer too small")
	ErrNotInitialized = errors.New("anchorfilter: header not initialized")
	ErrBadMagic       = errors.New("anchorfilter: header magic invalid")
	ErrBadVersion     = errors.New("anchorfilter: header version invalid")
	ErrBadK           = errors.New("anchorfilter: header k invalid")
	ErrBadMBits       = errors.New("anchorfilter: header mBits invalid")
	ErrMBitsOverflow  = errors.New("anchorfilter: mBits overflows supported range")
)

type HeaderV1 struct {
	K         uint8
	MBits     uint32
	NInserted uint32
}
