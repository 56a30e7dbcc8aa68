// Package etag computes whole-body checksums and S3-compatible multipart
// composite checksums ("ETags") for byte streams in a single bounded-memory
// pass.
//
// An S3 multipart ETag is not a hash of the object: each fixed-size part is
// hashed on its own, the raw part digests are concatenated and hashed again,
// and the part count is appended, e.g. 6af7ce83a80a9e9770967f4c9dfee72a-3.
// Hashing the same bytes with the same part size always reproduces the ETag
// an S3-compatible store would report for a multipart upload using that part
// size.
package etag

import (
	"errors"
	"fmt"
	"hash"
)

// ErrPartSize is returned when a part size below one byte is requested.
var ErrPartSize = errors.New("part size must be at least 1 byte")

// Sum is the outcome of hashing one stream to completion.
type Sum struct {
	// Algorithm that produced the digests.
	Algorithm *ChecksumAlgorithm

	// Size is the total number of bytes consumed.
	Size int64

	// Count is the number of parts the stream was split into. A zero-byte
	// stream has zero parts.
	Count int

	// Body is the digest of the whole stream.
	Body HashSum

	// Composite is the digest of the concatenated raw part digests.
	Composite HashSum
}

// ETag returns the S3 ETag representation of the composite digest: the bare
// hex digest for at most one part, or "<hex>-<count>" for two or more.
//
// A single part spans the whole stream, so its digest equals the body digest
// and the ETag matches the object's own checksum. A zero-part (empty) stream
// is formatted the same way, matching the ETag S3 reports for a zero-byte
// object.
func (s Sum) ETag() string {
	if s.Count <= 1 {
		return s.Body.Hex()
	}

	return fmt.Sprintf("%s-%d", s.Composite.Hex(), s.Count)
}

// Parts accumulates the body digest and the composite digest of a stream
// written through it. It implements io.Writer and splits the written bytes
// at part boundaries internally, so callers may write in chunks of any size
// without affecting either digest.
//
// A Parts is owned by a single goroutine; it is not safe for concurrent use.
type Parts struct {
	algo     *ChecksumAlgorithm
	partSize int64

	body hash.Hash
	sums hash.Hash

	// current part state, nil between parts
	part hash.Hash

	// bytes written to the current part
	n int64

	size  int64
	count int
}

// NewParts initializes a Parts for the given algorithm and part size.
func NewParts(algo *ChecksumAlgorithm, partSize int64) (*Parts, error) {
	if partSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrPartSize, partSize)
	}

	return &Parts{
		algo:     algo,
		partSize: partSize,
		body:     algo.New(),
		sums:     algo.New(),
	}, nil
}

// Count returns the number of parts started so far.
func (p *Parts) Count() int {
	return p.count
}

// Write adds buf to the running digests, folding a part digest into the
// composite state each time partSize bytes complete a part. It never returns
// an error.
func (p *Parts) Write(buf []byte) (int, error) {
	written := len(buf)

	p.body.Write(buf)
	p.size += int64(written)

	for len(buf) > 0 {
		if p.part == nil {
			p.part = p.algo.New()
			p.n = 0
			p.count++
		}

		n := int64(len(buf))
		if p.n+n > p.partSize {
			n = p.partSize - p.n
		}

		p.part.Write(buf[:n])
		p.n += n
		buf = buf[n:]

		if p.n == p.partSize {
			p.sums.Write(p.part.Sum(nil))
			p.part = nil
		}
	}

	return written, nil
}

// Sum finalizes any partial trailing part and returns the accumulated
// digests. The Parts must not be written to afterwards.
func (p *Parts) Sum() Sum {
	if p.part != nil {
		p.sums.Write(p.part.Sum(nil))
		p.part = nil
	}

	return Sum{
		Algorithm: p.algo,
		Size:      p.size,
		Count:     p.count,
		Body:      HashSum(p.body.Sum(nil)),
		Composite: HashSum(p.sums.Sum(nil)),
	}
}
