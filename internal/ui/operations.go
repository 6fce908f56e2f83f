package ui

import (
	"os"

	"EncodingConverter/internal/app"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/log"
	"EncodingConverter/internal/util"

	"fyne.io/fyne/v2"
)

// CreateReporter creates a reporter that mirrors run progress into the
// bound progress bar. Worker callbacks are marshalled onto the Fyne thread.
func (a *App) CreateReporter() *app.UIReporter {
	return app.NewUIReporter(
		func(text string) {
			log.Debug("Progress", log.String("status", text))
		},
		func(fraction float32, info string) {
			fyne.Do(func() {
				a.Bound.Progress.SetProgress(fraction, info)
			})
		},
	)
}

// onProceed handles the Proceed button.
// An empty or missing path does nothing, as does a click while working.
func (a *App) onProceed() {
	if a.State.IsWorking() {
		return
	}

	a.Bound.SyncToState(a.State)
	req, err := app.BuildRequest(a.State)
	if err != nil {
		a.State.SetStatus(err.Error(), util.RED)
		a.setStatus()
		return
	}
	if req.IsNoOp() {
		return
	}
	if _, err := os.Stat(req.RootPath); err != nil {
		return
	}

	a.beginWork()
	err = a.runner.Start(req, func(res app.RunResult) {
		fyne.Do(func() {
			a.finishWork(res)
		})
	})
	if err != nil {
		// ErrBusy: another run owns the worker; its completion re-enables
		// the inputs.
		log.Warn("Proceed rejected", log.Err(err))
	}
}

// beginWork disables the inputs before a run starts.
func (a *App) beginWork() {
	a.State.SetWorking(true)
	a.State.SetStatus("Converting...", util.WHITE)
	a.Bound.Progress.SetProgress(0, "")
	a.progressBar.Show()
	a.setStatus()
	a.updateInputs()
}

// finishWork runs on the Fyne thread once per run: it re-enables the
// inputs, focuses Proceed and shows the outcome. Proceed gets focus again
// when the dialog closes.
func (a *App) finishWork(res app.RunResult) {
	a.State.ApplyResult(res)
	a.progressBar.Hide()
	a.setStatus()
	a.updateInputs()

	a.focusProceed()
	a.showResultDialog(res)
}

func (a *App) focusProceed() {
	a.Window.Canvas().Focus(a.proceedButton)
}

// resultMessage returns the dialog text for a finished run.
func resultMessage(res app.RunResult) string {
	if res.Err != nil {
		if errors.Is(res.Err, errors.ErrBusy) {
			return "A conversion is already running."
		}
		return "Something went wrong :-(\n\n" + res.Err.Error()
	}
	msg := "Everything successfully converted!"
	if res.Skipped() > 0 {
		msg += "\n\n" + util.Plural(res.Skipped(), "file") + " left unchanged: encoding not detected."
	}
	return msg
}
