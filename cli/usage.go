package cli

import (
	"fmt"
)

const usageTemplate = `
NAME

   %[1]s - calculate the MD5 hash and S3 ETag for local files, URLs or stdin

SYNOPSIS

   %[1]s [-config <file>] [-verbose] [-format {tsv | json}]
   %[2]s [-checksum <algorithm>] [{-p | --processes} <count>]
   %[2]s [{-n | --part-size} <bytes>] {- | <file> | <pattern> | <url>} ...

   -h | -help | --help

       Print help and exit.

   -config <file>

       Load defaults (part_size, processes, checksum, format, verbose) from
       a TOML file before scanning the remaining arguments.

   -p <count> | --processes <count>

       Set the number of sources to hash in parallel. If not specified the
       number of CPUs is the default.

   -n <bytes> | --part-size <bytes>

       Change the number of bytes per part used for calculating the S3
       ETag. Plain byte counts and human readable sizes such as 500MB or
       1GiB are accepted. This flag may be repeated before each source; it
       applies to every source that follows it. The initial default value
       is 5 GiB.

   -checksum <algorithm>

       Hash with MD5, SHA1, SHA256, CRC32 or CRC32C. The default is MD5,
       the only algorithm whose composite matches an S3 ETag; the others
       produce the equivalent additional-checksum composite.

   -format {tsv | json}

       Report as tab-separated lines with a header (the default) or as a
       JSON array of result records.

   -verbose

       Enable debug logging to standard error.

   - | <file> | <pattern> | <url>

       Source(s) to hash. Use '-' to read once from standard input.
       Patterns may use glob syntax including '**', and http(s) URLs are
       fetched with retries.

EXAMPLE

   Hash one file with 500 MB parts and three files with 1 GiB parts:

       $ %[1]s -n 500MB x.1 -n 1GiB x.2 x.3 x.4
       input file      MD5 hash        S3 ETag
       x.1     1e5a631ee8c612596d370f922f1c435a        1f2ec1ae6e884967d08e3c0d7c31f160-3
       x.2     7ba3b0592ecc5713a906334da5e5eaa9        7f146c10464087fa9271cdffda4f35ba-2
       x.3     7993811e4f986046bf3cf89ca67b2575        6af7ce83a80a9e9770967f4c9dfee72a-3
       x.4     9979a256a96edd4537fe8437481b38d8        b4c3229097a1ab335300421b2e580a40-4

   Uploading the same files with the same part sizes produces identical
   ETags on any S3-compatible object store.
`

// Usage returns the full help text for the program name.
func Usage(prog string) string {
	pad := fmt.Sprintf("%*s", len(prog), "")
	return fmt.Sprintf(usageTemplate, prog, pad)
}
