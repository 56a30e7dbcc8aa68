// Package cli turns command line arguments into an immutable Options value
// and renders task results into the final report. It is a thin consumer of
// the etag, source and taskpool packages.
package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/jrobinso/s3etag/etag"
	"github.com/jrobinso/s3etag/source"
)

// Format selects the report output format.
type Format int

const (
	// FormatTSV is the default tab-separated report with a header line.
	FormatTSV Format = iota

	// FormatJSON emits a JSON array of result records.
	FormatJSON
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tsv":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatTSV, fmt.Errorf("format must be tsv or json: %s", s)
	}
}

// ErrStdinRepeated is returned when '-' is given more than once. Standard
// input can only be consumed by one task.
var ErrStdinRepeated = errors.New("standard input ('-') may only be given once")

// Options is the full configuration of one invocation, constructed once by
// Parse and passed around by value afterwards.
type Options struct {
	// Help indicates -h/-help/--help was given; no sources are scanned.
	Help bool

	// Verbose enables debug logging.
	Verbose bool

	// Format selects the report output format.
	Format Format

	// Algorithm computes both the body digest and the composite digest.
	Algorithm *etag.ChecksumAlgorithm

	// Workers bounds the number of concurrently hashed sources.
	Workers int

	// Sources in submission order, each carrying the part size in force
	// when it was scanned.
	Sources []source.Source
}

// Parse scans args sequentially, the way the arguments are meant to be
// read: '-n'/'--part-size' applies to every source that follows it until
// the next override, and glob patterns expand in place with the part size
// in force. It returns a typed error for anything unparsable; nothing is
// submitted on error.
func Parse(args []string) (*Options, error) {
	opts := &Options{
		Format:    FormatTSV,
		Algorithm: etag.MD5,
		Workers:   runtime.NumCPU(),
	}
	partSize := ByteSize(etag.DefaultPartSize)
	stdinSeen := false

	i := 0
	next := func(flag string) (string, error) {
		i++
		if i >= len(args) {
			return "", fmt.Errorf("missing value for %s", flag)
		}
		return args[i], nil
	}

	for ; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "-help", "--help":
			opts.Help = true
			return opts, nil

		case "-v", "-verbose", "--verbose":
			opts.Verbose = true

		case "-config", "--config":
			val, err := next(arg)
			if err != nil {
				return nil, err
			}
			if err := applyConfigFile(val, opts, &partSize); err != nil {
				return nil, fmt.Errorf("unable to load %s: %w", val, err)
			}

		case "-p", "--processes":
			val, err := next(arg)
			if err != nil {
				return nil, err
			}
			n, convErr := strconv.Atoi(val)
			if convErr != nil {
				return nil, fmt.Errorf("unable to parse %s: %s", arg, val)
			}
			opts.Workers = n

		case "-n", "--part-size":
			val, err := next(arg)
			if err != nil {
				return nil, err
			}
			if err := partSize.Set(val); err != nil {
				return nil, fmt.Errorf("unable to parse %s: %s", arg, val)
			}

		case "-checksum", "--checksum":
			val, err := next(arg)
			if err != nil {
				return nil, err
			}
			algo, parseErr := etag.ParseAlgorithm(val)
			if parseErr != nil {
				return nil, parseErr
			}
			opts.Algorithm = algo

		case "-format", "--format":
			val, err := next(arg)
			if err != nil {
				return nil, err
			}
			format, parseErr := ParseFormat(val)
			if parseErr != nil {
				return nil, parseErr
			}
			opts.Format = format

		default:
			if arg == source.Stdin {
				if stdinSeen {
					return nil, ErrStdinRepeated
				}
				stdinSeen = true
				opts.Sources = append(opts.Sources, source.Source{ID: source.Stdin, PartSize: int64(partSize)})
				continue
			}
			for _, path := range source.Expand(arg) {
				opts.Sources = append(opts.Sources, source.Source{ID: path, PartSize: int64(partSize)})
			}
		}
	}

	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}

	return opts, nil
}
