// Package app holds the converter's input state and orchestrates runs.
//
// State (state.go) carries what the user has entered in a front end.
// BuildRequest (request.go) freezes it into an immutable ConversionRequest.
// Runner (runner.go) executes a request on a single background worker,
// reports per-file progress through a Reporter (reporter.go) and hands the
// RunResult (result.go) to a completion callback exactly once.
package app

import (
	"image/color"
	"sync"

	"EncodingConverter/internal/charset"
	"EncodingConverter/internal/util"
)

// State holds the user's current inputs and the status display.
// All access is guarded by mu; front ends use the accessor methods.
type State struct {
	mu sync.RWMutex

	// Inputs
	RootPath       string
	Folder         bool // folder mode; single file otherwise
	Mask           string
	TargetEncoding string
	Backup         bool

	// Options without a GUI control
	OverwriteBackup bool
	VerifyBackup    bool
	Lossy           bool

	// Status
	Working         bool
	MainStatus      string
	MainStatusColor color.RGBA
	Progress        float32
	ProgressInfo    string
}

// NewState returns a state with the default inputs: folder mode with
// backups on.
func NewState() *State {
	s := &State{}
	s.resetLocked()
	return s
}

// Reset restores every input and the status line to defaults.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *State) resetLocked() {
	s.RootPath = ""
	s.Folder = true
	s.Mask = ""
	s.TargetEncoding = charset.DefaultTarget
	s.Backup = true
	s.OverwriteBackup = false
	s.VerifyBackup = false
	s.Lossy = false

	s.Working = false
	s.MainStatus = "Ready"
	s.MainStatusColor = util.WHITE
	s.Progress = 0
	s.ProgressInfo = ""
}

// MaskEnabled reports whether the mask input applies. It only does in
// folder mode.
func (s *State) MaskEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Folder
}

// SetWorking toggles the working flag that disables the inputs.
func (s *State) SetWorking(working bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Working = working
	if working {
		s.Progress = 0
		s.ProgressInfo = ""
	}
}

// IsWorking returns true while a run started from this state is in flight.
func (s *State) IsWorking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Working
}

// SetStatus updates the main status display.
func (s *State) SetStatus(text string, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MainStatus = text
	s.MainStatusColor = c
}

// Status returns the main status text and color.
func (s *State) Status() (string, color.RGBA) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MainStatus, s.MainStatusColor
}

// SetProgress updates the progress display.
func (s *State) SetProgress(fraction float32, info string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Progress = fraction
	s.ProgressInfo = info
}

// ApplyResult sets the status line from a finished run.
func (s *State) ApplyResult(res RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Working = false
	s.MainStatus = res.Summary()
	switch {
	case res.Err != nil:
		s.MainStatusColor = util.RED
	case res.Skipped() > 0:
		s.MainStatusColor = util.YELLOW
	default:
		s.MainStatusColor = util.GREEN
	}
}
