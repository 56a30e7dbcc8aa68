package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jrobinso/s3etag/taskpool"
)

// reportHeader precedes the first successful TSV line. The header is a
// presentation concern of report assembly, not of hashing.
const reportHeader = "input file\tMD5 hash\tS3 ETag"

// Reporter collects task handles in submission order and writes one report
// line per source. Failures go to the error stream and bump the error
// count without stopping collection.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	prog   string
	format Format

	nrec int
	nerr int
}

// NewReporter creates a Reporter writing the report to out and diagnostics
// to errOut, prefixed with prog.
func NewReporter(out, errOut io.Writer, prog string, format Format) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		prog:   prog,
		format: format,
	}
}

// Collect blocks on each handle in order and returns the number of failed
// tasks.
func (r *Reporter) Collect(tasks []*taskpool.Task) int {
	for _, task := range tasks {
		res := task.Wait()
		if res.Err != nil {
			r.nerr++
			fmt.Fprintf(r.errOut, "%s: error processing %s: %s\n", r.prog, res.Source.ID, res.Err)
			continue
		}
		r.write(res)
	}
	r.end()

	return r.nerr
}

// record is one entry of the JSON report.
type record struct {
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Size      int64  `json:"size"`
	Parts     int    `json:"parts"`
	Hash      string `json:"hash"`
	ETag      string `json:"etag"`
}

func (r *Reporter) write(res taskpool.Result) {
	switch r.format {
	case FormatJSON:
		if r.nrec == 0 {
			io.WriteString(r.out, "[\n")
		} else {
			io.WriteString(r.out, ",\n")
		}

		buf, err := json.Marshal(record{
			File:      res.Source.ID,
			Algorithm: res.Sum.Algorithm.String(),
			Size:      res.Sum.Size,
			Parts:     res.Sum.Count,
			Hash:      res.Sum.Body.Hex(),
			ETag:      res.Sum.ETag(),
		})
		if err != nil {
			fmt.Fprintf(r.errOut, "%s: error writing report for %s: %s\n", r.prog, res.Source.ID, err)
			return
		}

		io.WriteString(r.out, "  ")
		r.out.Write(buf)

	default:
		if r.nrec == 0 {
			fmt.Fprintln(r.out, reportHeader)
		}
		fmt.Fprintf(r.out, "%s\t%s\t%s\n", res.Source.ID, res.Sum.Body.Hex(), res.Sum.ETag())
	}

	r.nrec++
}

// end writes any trailing report text, e.g. the closing bracket of the
// JSON array.
func (r *Reporter) end() {
	if r.format != FormatJSON {
		return
	}

	if r.nrec == 0 {
		io.WriteString(r.out, "[]\n")
		return
	}

	io.WriteString(r.out, "\n]\n")
}
