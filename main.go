package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/jrobinso/s3etag/cli"
	"github.com/jrobinso/s3etag/etag"
	"github.com/jrobinso/s3etag/source"
	"github.com/jrobinso/s3etag/taskpool"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run wires the pipeline together and returns the process exit status: zero
// on full success, otherwise the number of errors encountered.
func run(args []string, out, errOut io.Writer) int {
	prog := filepath.Base(args[0])

	opts, err := cli.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(errOut, "%s: %s\n", prog, err)
		return 1
	}

	if opts.Help {
		fmt.Fprint(out, cli.Usage(prog))
		return 0
	}

	if len(opts.Sources) == 0 {
		fmt.Fprintf(errOut, "%s: at least one file argument is required\n", prog)
		return 1
	}

	logger := log.NewLogger()
	logger.EnableDebugLog(opts.Verbose)

	opener := source.NewOpener(logger)
	bufPool := etag.NewBufferPool(etag.DefaultCopyBufSize)

	pipeline := func(ctx context.Context, src source.Source) (etag.Sum, error) {
		rc, err := opener.Open(ctx, src)
		if err != nil {
			return etag.Sum{}, err
		}
		defer rc.Close()

		return etag.SumReader(rc, opts.Algorithm, src.PartSize, bufPool)
	}

	ctx := context.Background()
	pool := taskpool.New(opts.Workers, pipeline, logger)

	tasks := make([]*taskpool.Task, 0, len(opts.Sources))
	for _, src := range opts.Sources {
		tasks = append(tasks, pool.Submit(ctx, src))
	}

	return cli.NewReporter(out, errOut, prog, opts.Format).Collect(tasks)
}
