package etag

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"hash/crc32"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ChecksumAlgorithm identifies a checksum algorithm and, where one exists,
// its AWS types.ChecksumAlgorithm counterpart. MD5 has no AWS counterpart
// because it is the implicit algorithm behind plain ETags rather than an
// "additional checksum".
type ChecksumAlgorithm struct {
	name    string
	awsType types.ChecksumAlgorithm
	hasher  func() hash.Hash
}

// String returns the name of this algorithm.
func (a *ChecksumAlgorithm) String() string {
	return a.name
}

// HasType returns true if an AWS types.ChecksumAlgorithm counterpart exists.
func (a *ChecksumAlgorithm) HasType() bool {
	return a.awsType != ""
}

// Type returns the counterpart AWS types.ChecksumAlgorithm, or an empty
// string when none is defined.
func (a *ChecksumAlgorithm) Type() types.ChecksumAlgorithm {
	return a.awsType
}

// New returns a fresh hash state for this algorithm.
func (a *ChecksumAlgorithm) New() hash.Hash {
	return a.hasher()
}

// MD5 checksum algorithm. This is the default and the only algorithm that
// produces a digest comparable to an S3 ETag.
var MD5 = &ChecksumAlgorithm{
	name:   "MD5",
	hasher: md5.New,
}

// SHA1 checksum algorithm.
var SHA1 = &ChecksumAlgorithm{
	name:    "SHA1",
	awsType: types.ChecksumAlgorithmSha1,
	hasher:  sha1.New,
}

// SHA256 checksum algorithm.
var SHA256 = &ChecksumAlgorithm{
	name:    "SHA256",
	awsType: types.ChecksumAlgorithmSha256,
	hasher:  sha256.New,
}

// CRC32 (IEEE 802.3) checksum algorithm.
var CRC32 = &ChecksumAlgorithm{
	name:    "CRC32",
	awsType: types.ChecksumAlgorithmCrc32,
	hasher: func() hash.Hash {
		return crc32.New(crc32.MakeTable(crc32.IEEE))
	},
}

// CRC32C (Castagnoli) checksum algorithm.
var CRC32C = &ChecksumAlgorithm{
	name:    "CRC32C",
	awsType: types.ChecksumAlgorithmCrc32c,
	hasher: func() hash.Hash {
		return crc32.New(crc32.MakeTable(crc32.Castagnoli))
	},
}

// ParseAlgorithm resolves a case-insensitive algorithm name to its
// ChecksumAlgorithm.
func ParseAlgorithm(name string) (*ChecksumAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MD5":
		return MD5, nil
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "CRC32":
		return CRC32, nil
	case "CRC32C":
		return CRC32C, nil
	default:
		return nil, fmt.Errorf("checksum must be one of MD5, SHA1, SHA256, CRC32, or CRC32C: %s", name)
	}
}
