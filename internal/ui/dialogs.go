package ui

import (
	"fmt"

	"EncodingConverter/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// onBrowse opens a file or folder picker depending on the selected mode.
func (a *App) onBrowse() {
	folder, _ := a.Bound.Input.Folder.Get()
	if folder {
		d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.setPath(uri.Path())
		}, a.Window)
		a.setStartLocation(d)
		d.Show()
		return
	}

	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		a.setPath(path)
	}, a.Window)
	a.setStartLocation(d)
	d.Show()
}

// setStartLocation opens the picker in the directory of the current path.
func (a *App) setStartLocation(d *dialog.FileDialog) {
	current, _ := a.Bound.Input.RootPath.Get()
	if current == "" {
		return
	}
	dir := storage.NewFileURI(current)
	if folder, _ := a.Bound.Input.Folder.Get(); !folder {
		parent, err := storage.Parent(dir)
		if err != nil {
			return
		}
		dir = parent
	}
	if lister, err := storage.ListerForURI(dir); err == nil {
		d.SetLocation(lister)
	}
}

func (a *App) setPath(path string) {
	_ = a.Bound.Input.RootPath.Set(path)
}

// showResultDialog shows the single completion message of a run.
func (a *App) showResultDialog(res app.RunResult) {
	msg := resultMessage(res)
	var d dialog.Dialog
	if res.Err != nil {
		d = dialog.NewError(fmt.Errorf("%s", msg), a.Window)
	} else {
		d = dialog.NewInformation("Done", msg, a.Window)
	}
	d.SetOnClosed(a.focusProceed)
	a.resultDialog = d
	d.Show()
}
