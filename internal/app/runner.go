package app

import (
	"fmt"
	"sync"
	"time"

	"EncodingConverter/internal/convert"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/log"
	"EncodingConverter/internal/walker"

	"github.com/google/uuid"
)

// Runner executes conversion runs one at a time.
type Runner struct {
	converter *convert.Converter
	reporter  Reporter

	mu      sync.Mutex
	working bool
}

// NewRunner creates a runner. A nil converter uses the default detector
// and registry; a nil reporter discards progress.
func NewRunner(converter *convert.Converter, reporter Reporter) *Runner {
	if converter == nil {
		converter = convert.New(nil, nil)
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Runner{converter: converter, reporter: reporter}
}

// IsWorking returns true if a run is in flight.
func (r *Runner) IsWorking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.working
}

func (r *Runner) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.working {
		return false
	}
	r.working = true
	return true
}

func (r *Runner) release() {
	r.mu.Lock()
	r.working = false
	r.mu.Unlock()
}

// Start runs req on a background goroutine and returns immediately. done,
// if non-nil, is called exactly once from that goroutine after the runner
// is idle again. While a run is in flight Start returns ErrBusy and done is
// never called.
func (r *Runner) Start(req ConversionRequest, done func(RunResult)) error {
	if !r.acquire() {
		return errors.ErrBusy
	}

	go func() {
		var result RunResult
		defer func() {
			if p := recover(); p != nil {
				log.Error("Run panicked", log.String("panic", fmt.Sprint(p)))
				result.Err = fmt.Errorf("internal error: %v", p)
			}
			r.release()
			if done != nil {
				done(result)
			}
		}()
		result = r.execute(req)
	}()
	return nil
}

// Run executes req synchronously. If another run is in flight the result
// carries ErrBusy.
func (r *Runner) Run(req ConversionRequest) RunResult {
	if !r.acquire() {
		return RunResult{Request: req, Err: errors.ErrBusy}
	}
	defer r.release()
	return r.execute(req)
}

func (r *Runner) execute(req ConversionRequest) (res RunResult) {
	res = RunResult{ID: uuid.NewString(), Request: req, Started: time.Now()}
	logger := log.With(log.String("run", res.ID))
	defer func() { res.Duration = time.Since(res.Started) }()

	if req.IsNoOp() {
		logger.Debug("No root path given, nothing to do")
		res.NoOp = true
		return res
	}

	mask, err := walker.CompileMask(req.Mask)
	if err != nil {
		res.Err = errors.NewValidationError("mask", err.Error())
		return res
	}

	files := walker.Walk(req.RootPath, mask, req.Mode)
	if files == nil {
		res.NoOp = true
	}
	logger.Info("Run started",
		log.Path(req.RootPath),
		log.String("mode", req.Mode.String()),
		log.String("mask", req.Mask),
		log.String("to", req.TargetEncoding),
		log.Bool("backup", req.MakeBackup),
		log.Int("files", len(files)))

	r.reporter.OnStart(res.ID, len(files))
	opts := req.Options()
	for i, path := range files {
		r.reporter.OnFile(i, len(files), path)

		cr, err := r.converter.ConvertFile(path, req.TargetEncoding, opts)
		outcome := newOutcome(path, cr, err)
		res.Outcomes = append(res.Outcomes, outcome)
		r.reporter.OnOutcome(outcome)

		if err == nil {
			continue
		}
		if !errors.IsFatal(err) {
			// The file vanished between listing and reading.
			logger.Warn("Skipping file", log.Path(path), log.Err(err))
			continue
		}
		logger.Error("Run aborted", log.Path(path), log.Err(err))
		res.Err = err
		return res
	}

	logger.Info("Run finished",
		log.Int("converted", res.Converted()),
		log.Int("skipped", res.Skipped()),
		log.Duration("elapsed", time.Since(res.Started)))
	return res
}
