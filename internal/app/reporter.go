package app

import (
	"sync"

	"EncodingConverter/internal/util"
)

// Reporter receives per-file progress from a running conversion. Calls come
// from the worker goroutine, in order.
type Reporter interface {
	OnStart(runID string, total int)
	OnFile(index, total int, path string)
	OnOutcome(outcome ConversionOutcome)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) OnStart(string, int)         {}
func (NopReporter) OnFile(int, int, string)     {}
func (NopReporter) OnOutcome(ConversionOutcome) {}

// Ensure UIReporter implements Reporter
var _ Reporter = (*UIReporter)(nil)

// UIReporter tracks progress for a front end and forwards it to optional
// callbacks. The callbacks run on the worker goroutine; a GUI must marshal
// them onto its own thread.
type UIReporter struct {
	mu sync.RWMutex

	// Callbacks (set by the front end)
	OnStatus   func(text string)
	OnProgress func(fraction float32, info string)

	total   int
	done    int
	current string
	failed  int
	skipped int
}

// NewUIReporter creates a reporter with the given callbacks. Either may be nil.
func NewUIReporter(onStatus func(string), onProgress func(float32, string)) *UIReporter {
	return &UIReporter{OnStatus: onStatus, OnProgress: onProgress}
}

// OnStart implements Reporter.
func (r *UIReporter) OnStart(_ string, total int) {
	r.mu.Lock()
	r.total = total
	r.done = 0
	r.current = ""
	r.failed = 0
	r.skipped = 0
	r.mu.Unlock()

	r.progress(0, total)
	if r.OnStatus != nil {
		r.OnStatus("Found " + util.Plural(total, "file"))
	}
}

// OnFile implements Reporter.
func (r *UIReporter) OnFile(index, total int, path string) {
	r.mu.Lock()
	r.current = path
	r.mu.Unlock()

	if r.OnStatus != nil {
		r.OnStatus("Converting " + path)
	}
	r.progress(index, total)
}

// OnOutcome implements Reporter.
func (r *UIReporter) OnOutcome(o ConversionOutcome) {
	r.mu.Lock()
	r.done++
	switch {
	case !o.Success:
		r.failed++
	case o.Warning != nil:
		r.skipped++
	}
	done, total := r.done, r.total
	r.mu.Unlock()

	r.progress(done, total)
}

func (r *UIReporter) progress(done, total int) {
	if r.OnProgress != nil {
		r.OnProgress(util.Countify(done, total))
	}
}

// Progress returns the fraction of files finished and an "i/n" label.
func (r *UIReporter) Progress() (float32, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return util.Countify(r.done, r.total)
}

// Current returns the path being converted.
func (r *UIReporter) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Counts returns the skipped and failed file counts so far.
func (r *UIReporter) Counts() (skipped, failed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.skipped, r.failed
}
