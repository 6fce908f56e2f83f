package app

import (
	"fmt"
	"time"

	"EncodingConverter/internal/convert"
	"EncodingConverter/internal/util"
)

// ConversionOutcome records what happened to one file.
type ConversionOutcome struct {
	Path             string
	Success          bool
	Status           convert.Status
	DetectedEncoding string // empty when unknown
	Confidence       int
	BytesIn          int
	BytesOut         int
	Err              error // set when Success is false
	Warning          error // set for a skipped file
}

func newOutcome(path string, res convert.Result, err error) ConversionOutcome {
	o := ConversionOutcome{
		Path:       path,
		Success:    err == nil,
		Status:     res.Status,
		Confidence: res.Detection.Confidence,
		BytesIn:    res.BytesIn,
		BytesOut:   res.BytesOut,
		Err:        err,
		Warning:    res.Warning,
	}
	if res.Detection.Conclusive {
		o.DetectedEncoding = res.Detection.Charset
	}
	if err != nil {
		o.Status = convert.StatusFailed
	}
	return o
}

// RunResult is the single completion message of a run. Err is nil on
// overall success; otherwise it is the first fatal failure.
type RunResult struct {
	ID       string
	Request  ConversionRequest
	Outcomes []ConversionOutcome
	Err      error
	NoOp     bool // nothing to do: empty or missing root
	Started  time.Time
	Duration time.Duration
}

// Success reports overall success.
func (r RunResult) Success() bool {
	return r.Err == nil
}

func (r RunResult) count(status convert.Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Converted returns the number of rewritten files.
func (r RunResult) Converted() int { return r.count(convert.StatusConverted) }

// Skipped returns the number of files left untouched.
func (r RunResult) Skipped() int { return r.count(convert.StatusSkipped) }

// Failed returns the number of failed files.
func (r RunResult) Failed() int { return r.count(convert.StatusFailed) }

// Summary renders the result as one status line.
func (r RunResult) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("Failed: %v", r.Err)
	}
	if r.NoOp {
		return "Nothing to convert"
	}
	s := fmt.Sprintf("Converted %s to %s", util.Plural(r.Converted(), "file"), r.Request.TargetEncoding)
	if n := r.Skipped(); n > 0 {
		s += fmt.Sprintf(", skipped %d", n)
	}
	return s
}
