package storagekey

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// AnchorBytes is the width of the namespace/item anchor at the start of every key.
const AnchorBytes = 32

var ErrBadKeyText = errors.New("storagekey: key text is not valid hex")

// Key is a derived storage key. Equality is byte exact.
type Key []byte

// Hex returns the lowercase hex form, without prefix.
func (k Key) Hex() string {
	return hex.EncodeToString(k)
}

func (k Key) String() string {
	return k.Hex()
}

func (k Key) Equal(o Key) bool {
	return bytes.Equal(k, o)
}

// HasPrefix reports whether k lies in the address range of prefix, for
// example a map anchor.
func (k Key) HasPrefix(prefix Key) bool {
	return bytes.HasPrefix(k, prefix)
}

// Anchor returns the namespace/item part of k, or nil if k is too short.
func (k Key) Anchor() Key {
	if len(k) < AnchorBytes {
		return nil
	}
	return k[:AnchorBytes:AnchorBytes]
}

// Clone returns a copy of k that does not alias it.
func (k Key) Clone() Key {
	return append(Key(nil), k...)
}

// ParseKey decodes the hex form of a key. A leading 0x is accepted.
func ParseKey(text string) (Key, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "0x")
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKeyText, err)
	}
	return Key(b), nil
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseKey.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
