package cli

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
)

// ByteSize represents an int64 count of bytes parsed from a human readable
// representation. Binary suffixes ("1GiB") are interpreted base-1024 and
// decimal suffixes ("500MB") base-1000; a bare number is a byte count.
type ByteSize int64

// String returns a human readable representation of the size.
func (p ByteSize) String() string {
	return units.BytesSize(float64(p))
}

// Set parses a human readable size, e.g. "1073741824", "500MB" or "5GiB".
// Sizes below one byte are rejected.
func (p *ByteSize) Set(s string) error {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	var n int64
	var err error
	if strings.Contains(strings.ToUpper(s), "IB") {
		n, err = units.RAMInBytes(s)
	} else {
		n, err = units.FromHumanSize(s)
	}
	if err != nil {
		return err
	}

	if n < 1 {
		return fmt.Errorf("part size must be at least 1 byte: %s", s)
	}

	*p = ByteSize(n)

	return nil
}
