package etag

import (
	"io"
)

// DefaultPartSize is the initial part size: 5 GiB, the largest part an S3
// multipart upload accepts.
const DefaultPartSize int64 = 5 * 1024 * 1024 * 1024

// DefaultCopyBufSize is the default I/O buffer size used when draining a
// stream into the hash states.
const DefaultCopyBufSize int64 = 256 * 1024

// SumReader drains r to completion and returns its digests. Memory use is
// bounded by a single copy buffer of at most DefaultCopyBufSize bytes (or
// partSize, whichever is smaller) regardless of the stream length or the
// part size. A read error aborts the pass and no Sum is produced.
//
// The reader's origin is irrelevant: files, standard input and network
// bodies hash identically for identical bytes.
func SumReader(r io.Reader, algo *ChecksumAlgorithm, partSize int64, pool BufferPool) (Sum, error) {
	parts, err := NewParts(algo, partSize)
	if err != nil {
		return Sum{}, err
	}

	size := DefaultCopyBufSize
	if partSize < size {
		size = partSize
	}

	var buf []byte
	if pool != nil {
		buf = pool.Get(size)
		defer pool.Put(buf)
	} else {
		buf = make([]byte, size)
	}

	if _, err := io.CopyBuffer(parts, r, buf); err != nil {
		return Sum{}, err
	}

	return parts.Sum(), nil
}
