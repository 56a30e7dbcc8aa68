package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0600))

	opener := NewOpener(log.NewLogger())
	rc, err := opener.Open(context.Background(), Source{ID: path, PartSize: 4})
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(got))
}

func TestOpenMissingFile(t *testing.T) {
	opener := NewOpener(log.NewLogger())

	_, err := opener.Open(context.Background(), Source{ID: filepath.Join(t.TempDir(), "nope"), PartSize: 4})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenStdin(t *testing.T) {
	opener := NewOpener(log.NewLogger())
	opener.stdin = strings.NewReader("piped bytes")

	rc, err := opener.Open(context.Background(), Source{ID: Stdin, PartSize: 4})
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "piped bytes", string(got))
}

func TestOpenRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote body"))
	}))
	defer server.Close()

	opener := NewOpener(log.NewLogger())
	rc, err := opener.Open(context.Background(), Source{ID: server.URL, PartSize: 4})
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "remote body", string(got))
}

func TestOpenRemoteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	opener := NewOpener(log.NewLogger())
	_, err := opener.Open(context.Background(), Source{ID: server.URL + "/missing", PartSize: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSourcePredicates(t *testing.T) {
	assert.True(t, Source{ID: "-"}.IsStdin())
	assert.False(t, Source{ID: "./-"}.IsStdin())
	assert.True(t, Source{ID: "https://example.com/x.iso"}.IsRemote())
	assert.True(t, Source{ID: "http://example.com/x.iso"}.IsRemote())
	assert.False(t, Source{ID: "x.iso"}.IsRemote())
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.iso", "b.iso", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "d.iso"), []byte("d"), 0600))

	tests := []struct {
		name string
		arg  string
		want []string
	}{
		{
			name: "plain path passes through",
			arg:  filepath.Join(dir, "a.iso"),
			want: []string{filepath.Join(dir, "a.iso")},
		},
		{
			name: "stdin token passes through",
			arg:  "-",
			want: []string{"-"},
		},
		{
			name: "url passes through",
			arg:  "https://example.com/x?version=2",
			want: []string{"https://example.com/x?version=2"},
		},
		{
			name: "single star",
			arg:  filepath.Join(dir, "*.iso"),
			want: []string{filepath.Join(dir, "a.iso"), filepath.Join(dir, "b.iso")},
		},
		{
			name: "double star",
			arg:  filepath.Join(dir, "**", "*.iso"),
			want: []string{
				filepath.Join(dir, "a.iso"),
				filepath.Join(dir, "b.iso"),
				filepath.Join(dir, "nested", "d.iso"),
			},
		},
		{
			name: "no match passes through",
			arg:  filepath.Join(dir, "*.img"),
			want: []string{filepath.Join(dir, "*.img")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.arg))
		})
	}
}
