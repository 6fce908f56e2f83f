// Package ui provides the encoding converter's graphical user interface
// using Fyne.
package ui

import (
	"EncodingConverter/internal/app"
	"EncodingConverter/internal/charset"
	"EncodingConverter/internal/util"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	modeFile   = "File"
	modeFolder = "Folder"
)

// App is the main window and its widgets. Widgets are only touched from
// the Fyne thread; worker callbacks go through fyne.Do.
type App struct {
	fyneApp fyne.App
	Window  fyne.Window
	Version string

	State  *app.State
	Bound  *app.BoundState
	runner *app.Runner

	pathEntry      *widget.Entry
	browseButton   *widget.Button
	modeRadio      *widget.RadioGroup
	maskEntry      *widget.Entry
	encodingSelect *widget.Select
	backupCheck    *widget.Check
	proceedButton  *widget.Button
	progressBar    *widget.ProgressBar
	statusText     *canvas.Text
	resultDialog   dialog.Dialog
}

// NewApp creates the application and its main window.
func NewApp(version string) (*App, error) {
	fa := fyneapp.NewWithID("org.encconv.EncodingConverter")
	fa.Settings().SetTheme(NewCompactTheme())
	return newApp(fa, version), nil
}

func newApp(fa fyne.App, version string) *App {
	a := &App{
		fyneApp: fa,
		Version: version,
		State:   app.NewState(),
		Bound:   app.NewBoundState(),
	}
	a.runner = app.NewRunner(nil, a.CreateReporter())

	a.Window = fa.NewWindow("Encoding Converter " + version)
	a.Window.SetContent(a.buildContent())
	a.Window.SetOnDropped(a.onDropped)
	a.Window.Canvas().SetOnTypedKey(a.onTypedKey)
	a.Window.Resize(fyne.NewSize(520, 0))
	a.Window.SetFixedSize(true)

	a.Bound.SyncFromState(a.State)
	a.updateInputs()
	return a
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.Window.ShowAndRun()
}

func (a *App) buildContent() fyne.CanvasObject {
	a.pathEntry = widget.NewEntryWithData(a.Bound.Input.RootPath)
	a.pathEntry.SetPlaceHolder("File or folder to convert")
	a.pathEntry.OnSubmitted = a.onSubmitted
	a.browseButton = widget.NewButton("Browse...", a.onBrowse)

	a.modeRadio = widget.NewRadioGroup([]string{modeFile, modeFolder}, a.onModeChanged)
	a.modeRadio.Horizontal = true
	a.modeRadio.Required = true
	if a.State.MaskEnabled() {
		a.modeRadio.SetSelected(modeFolder)
	} else {
		a.modeRadio.SetSelected(modeFile)
	}

	a.maskEntry = widget.NewEntryWithData(a.Bound.Input.Mask)
	a.maskEntry.SetPlaceHolder("Enter mask, e.g. *.txt")
	a.maskEntry.OnSubmitted = a.onSubmitted

	a.encodingSelect = widget.NewSelect(charset.Supported().Names(), func(name string) {
		_ = a.Bound.Input.TargetEncoding.Set(name)
	})
	a.encodingSelect.SetSelected(charset.DefaultTarget)

	a.backupCheck = widget.NewCheckWithData("Backup", a.Bound.Input.Backup)

	a.proceedButton = widget.NewButton("Proceed", a.onProceed)
	a.proceedButton.Importance = widget.HighImportance

	a.progressBar = widget.NewProgressBarWithData(a.Bound.Progress.Progress)
	a.progressBar.Hide()

	a.statusText = canvas.NewText("Ready", util.WHITE)
	a.statusText.TextSize = 12

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Path"), container.NewBorder(nil, nil, nil, a.browseButton, a.pathEntry),
		widget.NewLabel("Mode"), a.modeRadio,
		widget.NewLabel("Mask"), a.maskEntry,
		widget.NewLabel("Encoding"), a.encodingSelect,
		layout.NewSpacer(), a.backupCheck,
	)

	return container.NewVBox(
		form,
		a.progressBar,
		container.NewBorder(nil, nil, a.statusText, a.proceedButton),
	)
}

// onModeChanged switches between file and folder mode. A path chosen for
// one mode is cleared when switching to the other.
func (a *App) onModeChanged(selected string) {
	_ = a.Bound.Input.Folder.Set(selected == modeFolder)
	a.setPath("")
	if a.maskEntry != nil {
		a.updateInputs()
	}
}

// onTypedKey starts a conversion on Enter when no entry has focus.
func (a *App) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
		a.onProceed()
	}
}

func (a *App) onSubmitted(string) {
	a.onProceed()
}

// updateInputs applies the enabled state of every input: all disabled
// while working, the mask additionally disabled in file mode.
func (a *App) updateInputs() {
	working := a.State.IsWorking()
	folder, _ := a.Bound.Input.Folder.Get()

	for _, w := range []fyne.Disableable{a.pathEntry, a.browseButton, a.modeRadio, a.encodingSelect, a.backupCheck, a.proceedButton} {
		if working {
			w.Disable()
		} else {
			w.Enable()
		}
	}
	if working || !folder {
		a.maskEntry.Disable()
	} else {
		a.maskEntry.Enable()
	}
}

// setStatus updates the status line from State.
func (a *App) setStatus() {
	text, c := a.State.Status()
	a.statusText.Text = text
	a.statusText.Color = c
	a.statusText.Refresh()
	a.Bound.Progress.SetMainStatus(text)
}
