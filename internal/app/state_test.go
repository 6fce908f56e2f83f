package app

import (
	"errors"
	"image/color"
	"sync"
	"testing"

	"EncodingConverter/internal/convert"
	"EncodingConverter/internal/util"
)

func TestNewState(t *testing.T) {
	state := NewState()

	if state.TargetEncoding != "IBM866" {
		t.Errorf("TargetEncoding = %q; want IBM866", state.TargetEncoding)
	}
	if state.MainStatus != "Ready" {
		t.Errorf("MainStatus = %q; want 'Ready'", state.MainStatus)
	}
	if state.MainStatusColor != util.WHITE {
		t.Error("MainStatusColor should be WHITE")
	}
	if !state.Folder || !state.Backup {
		t.Error("folder mode and backups should be on by default")
	}
	if state.Working {
		t.Error("Working should default to false")
	}
	if !state.MaskEnabled() {
		t.Error("mask is enabled in folder mode")
	}
}

func TestStateReset(t *testing.T) {
	state := NewState()
	state.RootPath = "/data"
	state.Folder = false
	state.Mask = "*.txt"
	state.TargetEncoding = "UTF-8"
	state.Backup = false
	state.Working = true
	state.SetStatus("Failed", util.RED)

	if state.MaskEnabled() {
		t.Error("mask is disabled in single file mode")
	}

	state.Reset()

	if state.RootPath != "" || !state.Folder || state.Mask != "" || !state.Backup || state.Working {
		t.Errorf("inputs not reset: %+v", state)
	}
	if state.TargetEncoding != "IBM866" {
		t.Errorf("TargetEncoding = %q after reset", state.TargetEncoding)
	}
	if text, c := state.Status(); text != "Ready" || c != util.WHITE {
		t.Errorf("status = %q %v after reset", text, c)
	}
}

func TestStateSetWorking(t *testing.T) {
	state := NewState()
	state.SetProgress(0.5, "1/2")

	state.SetWorking(true)
	if !state.IsWorking() {
		t.Error("IsWorking should be true")
	}
	if state.Progress != 0 || state.ProgressInfo != "" {
		t.Error("starting work should clear progress")
	}

	state.SetWorking(false)
	if state.IsWorking() {
		t.Error("IsWorking should be false")
	}
}

func TestStateApplyResult(t *testing.T) {
	tests := []struct {
		name  string
		res   RunResult
		color color.RGBA
	}{
		{"success", RunResult{Outcomes: []ConversionOutcome{{Success: true, Status: convert.StatusConverted}}}, util.GREEN},
		{"skipped", RunResult{Outcomes: []ConversionOutcome{{Success: true, Status: convert.StatusSkipped}}}, util.YELLOW},
		{"failed", RunResult{Err: errors.New("boom")}, util.RED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			state.SetWorking(true)
			state.ApplyResult(tt.res)

			text, c := state.Status()
			if c != tt.color {
				t.Errorf("color = %v, want %v", c, tt.color)
			}
			if text != tt.res.Summary() {
				t.Errorf("status = %q, want %q", text, tt.res.Summary())
			}
			if state.IsWorking() {
				t.Error("ApplyResult should clear Working")
			}
		})
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	state := NewState()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			state.SetProgress(0.5, "1/2")
			state.SetStatus("Working", util.WHITE)
		}()
		go func() {
			defer wg.Done()
			_ = state.IsWorking()
			_, _ = state.Status()
			_, _ = BuildRequest(state)
		}()
	}
	wg.Wait()
}

func TestResultSummary(t *testing.T) {
	res := RunResult{
		Request: ConversionRequest{TargetEncoding: "IBM866"},
		Outcomes: []ConversionOutcome{
			{Success: true, Status: convert.StatusConverted},
			{Success: true, Status: convert.StatusConverted},
			{Success: true, Status: convert.StatusSkipped},
		},
	}
	if got := res.Summary(); got != "Converted 2 files to IBM866, skipped 1" {
		t.Errorf("Summary() = %q", got)
	}

	res.Outcomes = res.Outcomes[:1]
	if got := res.Summary(); got != "Converted 1 file to IBM866" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestNewOutcome(t *testing.T) {
	o := newOutcome("/x", convert.Result{Status: convert.StatusConverted}, errors.New("write failed"))
	if o.Success || o.Status != convert.StatusFailed {
		t.Errorf("an error must mark the outcome failed: %+v", o)
	}
}
