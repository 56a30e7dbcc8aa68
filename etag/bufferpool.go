package etag

import (
	"sync"
)

// BufferPool specifies an interface to fetch and return reusable []byte
// buffers.
type BufferPool interface {
	Get(int64) []byte
	Put([]byte)
}

// bufferPool implements a simple unbounded cache for reusing []byte of a
// preferred size.
type bufferPool struct {
	size int64
	pool *sync.Pool
}

// NewBufferPool initializes a BufferPool whose buffers default to the
// specified size in bytes.
func NewBufferPool(size int64) BufferPool {
	return &bufferPool{
		size: size,
		pool: &sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Get returns a []byte of the requested length, reallocating or resizing a
// pooled buffer if necessary. Return it via Put when done.
func (p *bufferPool) Get(size int64) []byte {
	buf := p.pool.Get().([]byte)

	if int64(len(buf)) < size {
		if size > int64(cap(buf)) {
			// capacity too small, replace the buffer outright
			buf = make([]byte, size)
		} else {
			buf = buf[0:size]
		}
	} else if int64(len(buf)) > size {
		buf = buf[0:size]
	}

	return buf
}

// Put returns a buffer to the pool for reuse by a later Get.
func (p *bufferPool) Put(b []byte) {
	p.pool.Put(b)
}
