package ui

import (
	"os"

	"EncodingConverter/internal/log"

	"fyne.io/fyne/v2"
)

// onDropped fills the path from the first item dropped onto the window and
// switches the mode to match it. Drops are ignored while working.
func (a *App) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 || a.State.IsWorking() {
		return
	}
	if len(uris) > 1 {
		log.Info("Multiple items dropped, using the first", log.Int("count", len(uris)))
	}
	path := uris[0].Path()

	mode := modeFile
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		mode = modeFolder
	}
	// Switching mode clears the path, so set the mode first.
	a.modeRadio.SetSelected(mode)
	a.setPath(path)
}
