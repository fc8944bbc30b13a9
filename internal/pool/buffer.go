// Package pool provides pooled scratch buffers used by the codec package
// while assembling a payload for encode. Pooling avoids a fresh allocation
// on every Scene -> bytes encode in hot paths such as batch conversion tools.
package pool

import "sync"

// Default and maximum retained sizes for the payload staging buffer.
//
// The default holds the uncompressed payload (positions + alphas + colors +
// scales + rotations + SH) of about 55,000 points at SH degree 0 (19 bytes
// each) or about 16,000 points at SH degree 3 (64 bytes each); larger
// payloads grow the buffer. PayloadBufferMaxThreshold bounds how large a buffer the
// pool will retain so one unusually large scene doesn't pin megabytes of
// memory for the lifetime of the process.
const (
	PayloadBufferDefaultSize  = 1 << 20 // 1MiB
	PayloadBufferMaxThreshold = 1 << 24 // 16MiB
)

// Buffer is a growable byte slice with amortized growth, used as encode
// scratch space. It is not safe for concurrent use.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given starting capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer but keeps its backing array for reuse.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Write appends data to the buffer, growing it if necessary.
func (b *Buffer) Write(data []byte) {
	b.B = append(b.B, data...)
}

// Grow ensures the buffer can accept at least n more bytes without a
// reallocation. While the capacity is at most 4x PayloadBufferDefaultSize it
// grows by PayloadBufferDefaultSize; above that it grows by a quarter of the
// current capacity. It always grows by at least n.
func (b *Buffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := PayloadBufferDefaultSize
	if cap(b.B) > 4*PayloadBufferDefaultSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(b.B), len(b.B)+growBy)
	copy(next, b.B)
	b.B = next
}

// bufferPool pools Buffers to reduce allocations across repeated
// encode calls.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

func (p *bufferPool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && cap(buf.B) > p.maxThreshold {
		return // let oversized buffers be collected instead of bloating the pool
	}
	buf.Reset()
	p.pool.Put(buf)
}

var payloadPool = newBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)

// GetPayloadBuffer retrieves a scratch Buffer from the shared pool.
func GetPayloadBuffer() *Buffer { return payloadPool.Get() }

// PutPayloadBuffer returns a scratch Buffer to the shared pool.
func PutPayloadBuffer(buf *Buffer) { payloadPool.Put(buf) }
