package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrobinso/s3etag/etag"
	"github.com/jrobinso/s3etag/source"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse([]string{"x.1"})
	require.NoError(t, err)

	assert.False(t, opts.Help)
	assert.False(t, opts.Verbose)
	assert.Equal(t, FormatTSV, opts.Format)
	assert.Same(t, etag.MD5, opts.Algorithm)
	assert.Equal(t, runtime.NumCPU(), opts.Workers)
	require.Len(t, opts.Sources, 1)
	assert.Equal(t, source.Source{ID: "x.1", PartSize: etag.DefaultPartSize}, opts.Sources[0])
}

func TestParsePartSizeAppliesToFollowingSources(t *testing.T) {
	opts, err := Parse([]string{"-n", "500MB", "x.1", "-n", "1GiB", "x.2", "x.3"})
	require.NoError(t, err)

	require.Len(t, opts.Sources, 3)
	assert.Equal(t, source.Source{ID: "x.1", PartSize: 500 * 1000 * 1000}, opts.Sources[0])
	assert.Equal(t, source.Source{ID: "x.2", PartSize: 1024 * 1024 * 1024}, opts.Sources[1])
	assert.Equal(t, source.Source{ID: "x.3", PartSize: 1024 * 1024 * 1024}, opts.Sources[2])
}

func TestParseProcesses(t *testing.T) {
	opts, err := Parse([]string{"-p", "3", "x.1"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)

	// non-positive counts fall back to the CPU count
	opts, err = Parse([]string{"--processes", "0", "x.1"})
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), opts.Workers)
}

func TestParseUnparsableNumbers(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "processes not a number", args: []string{"-p", "many", "x.1"}},
		{name: "part size not a size", args: []string{"-n", "huge", "x.1"}},
		{name: "part size zero", args: []string{"-n", "0", "x.1"}},
		{name: "missing processes value", args: []string{"x.1", "-p"}},
		{name: "missing part size value", args: []string{"x.1", "--part-size"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
		})
	}
}

func TestParseHelp(t *testing.T) {
	for _, flag := range []string{"-h", "-help", "--help"} {
		opts, err := Parse([]string{flag, "x.1"})
		require.NoError(t, err)
		assert.True(t, opts.Help)
		assert.Empty(t, opts.Sources)
	}
}

func TestParseStdinOnlyOnce(t *testing.T) {
	opts, err := Parse([]string{"-"})
	require.NoError(t, err)
	require.Len(t, opts.Sources, 1)
	assert.True(t, opts.Sources[0].IsStdin())

	_, err = Parse([]string{"-", "x.1", "-"})
	require.ErrorIs(t, err, ErrStdinRepeated)
}

func TestParseChecksumAndFormat(t *testing.T) {
	opts, err := Parse([]string{"-checksum", "sha256", "-format", "json", "x.1"})
	require.NoError(t, err)
	assert.Same(t, etag.SHA256, opts.Algorithm)
	assert.Equal(t, FormatJSON, opts.Format)

	_, err = Parse([]string{"-checksum", "SHA512", "x.1"})
	require.Error(t, err)

	_, err = Parse([]string{"-format", "xml", "x.1"})
	require.Error(t, err)
}

func TestParseExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.iso"), []byte("a"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.iso"), []byte("b"), 0600))

	opts, err := Parse([]string{"-n", "1KiB", filepath.Join(dir, "*.iso")})
	require.NoError(t, err)

	require.Len(t, opts.Sources, 2)
	assert.Equal(t, filepath.Join(dir, "a.iso"), opts.Sources[0].ID)
	assert.Equal(t, filepath.Join(dir, "b.iso"), opts.Sources[1].ID)
	assert.Equal(t, int64(1024), opts.Sources[0].PartSize)
}

func TestParseZeroSources(t *testing.T) {
	opts, err := Parse([]string{"-n", "1GiB"})
	require.NoError(t, err)
	assert.Empty(t, opts.Sources)
}
