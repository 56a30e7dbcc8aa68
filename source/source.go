// Package source resolves the streams named on the command line: filesystem
// paths, the standard-input token, glob patterns and http(s) URLs.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Stdin is the argument token naming the standard-input stream. Standard
// input is destructive to read, so at most one task may consume it per
// invocation.
const Stdin = "-"

// Source names one stream to hash together with the part size in force when
// it was submitted. Immutable once created.
type Source struct {
	// ID is the caller-supplied identifier: a path, Stdin, or a URL.
	ID string

	// PartSize is the byte count per part, fixed for this source.
	PartSize int64
}

// IsStdin reports whether the source reads the standard-input stream.
func (s Source) IsStdin() bool {
	return s.ID == Stdin
}

// IsRemote reports whether the source is fetched over HTTP.
func (s Source) IsRemote() bool {
	return strings.HasPrefix(s.ID, "http://") || strings.HasPrefix(s.ID, "https://")
}

// Opener turns a Source into a readable stream. Remote sources share a
// retrying HTTP client; files and stdin are opened directly.
type Opener struct {
	stdin      io.Reader
	httpClient *http.Client
	logger     log.Logger
}

// NewOpener creates an Opener that reads the process's standard input for
// the Stdin token.
func NewOpener(logger log.Logger) *Opener {
	retryableHTTPClient := retryhttp.NewClient(logger)
	retryableHTTPClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		retry, checkErr := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		logger.Debugf("CheckRetry: retry=%v ; err=%+v", retry, checkErr)
		return retry, checkErr
	}

	return &Opener{
		stdin:      os.Stdin,
		httpClient: retryableHTTPClient.StandardClient(),
		logger:     logger,
	}
}

// Open returns the stream for src. The caller owns the returned
// io.ReadCloser and must close it when the pass is done.
func (o *Opener) Open(ctx context.Context, src Source) (io.ReadCloser, error) {
	switch {
	case src.IsStdin():
		return io.NopCloser(o.stdin), nil
	case src.IsRemote():
		return o.openRemote(ctx, src.ID)
	default:
		return os.Open(src.ID)
	}
}

func (o *Opener) openRemote(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
