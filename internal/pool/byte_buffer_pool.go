// Package pool provides pooled byte buffers for batch encoding.
package pool

import "sync"

const (
	// BatchBufferDefaultSize is the initial capacity of a pooled buffer.
	BatchBufferDefaultSize = 16 * 1024

	// BatchBufferMaxThreshold is the largest buffer returned to the pool;
	// larger ones are dropped so a single huge batch does not pin memory.
	BatchBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a minimal growable byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteString appends s to the buffer.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// MustWriteByte appends a single byte.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

var batchBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BatchBufferDefaultSize)}
	},
}

// GetBatchBuffer obtains an empty buffer from the pool.
func GetBatchBuffer() *ByteBuffer {
	bb, _ := batchBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBatchBuffer returns a buffer to the pool.
func PutBatchBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BatchBufferMaxThreshold {
		return
	}
	batchBufferPool.Put(bb)
}
