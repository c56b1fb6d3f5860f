package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrNilBuffer    = errors.New("bridge: nil buffer with non zero length")
	ErrBufferLength = errors.New("bridge: length is outside the buffer")
)

// Buffer is an owned, bounds checked copy of caller memory.
type Buffer struct {
	data []byte
}

// NewBuffer validates a (data, length) pair and copies the first length bytes
// of data. A nil data is only accepted with a zero length.
func NewBuffer(data []byte, length int) (Buffer, error) {
	if data == nil && length != 0 {
		return Buffer{}, ErrNilBuffer
	}
	if length < 0 || length > len(data) {
		return Buffer{}, fmt.Errorf("%w: length %d, buffer %d", ErrBufferLength, length, len(data))
	}
	return Buffer{data: append([]byte{}, data[:length]...)}, nil
}

// BufferOf copies data in full.
func BufferOf(data []byte) Buffer {
	return Buffer{data: append([]byte{}, data...)}
}

// Bytes returns the owned bytes. Callers must not modify them.
func (b Buffer) Bytes() []byte { return b.data }

func (b Buffer) Len() int { return len(b.data) }
