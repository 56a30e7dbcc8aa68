package etag

import (
	"encoding/base64"
	"encoding/hex"
)

// HashSum represents a []byte returned by a hash.Hash Sum call.
type HashSum []byte

// Bytes returns the raw digest bytes.
func (s HashSum) Bytes() []byte {
	return []byte(s)
}

// Hex returns the lowercase hex-encoded representation of the digest.
func (s HashSum) Hex() string {
	return hex.EncodeToString(s)
}

// Base64 returns the base64-encoded representation of the digest, the form
// AWS uses to report additional checksums.
func (s HashSum) Base64() string {
	return base64.StdEncoding.EncodeToString(s)
}

// String returns the hex-encoded representation of the digest.
func (s HashSum) String() string {
	return s.Hex()
}
