package app

import (
	"fyne.io/fyne/v2/data/binding"
)

// BoundInput provides Fyne data bindings for the input widgets.
type BoundInput struct {
	RootPath       binding.String
	Folder         binding.Bool
	Mask           binding.String
	TargetEncoding binding.String
	Backup         binding.Bool
}

// NewBoundInput creates a new BoundInput with default values.
func NewBoundInput() *BoundInput {
	return &BoundInput{
		RootPath:       binding.NewString(),
		Folder:         binding.NewBool(),
		Mask:           binding.NewString(),
		TargetEncoding: binding.NewString(),
		Backup:         binding.NewBool(),
	}
}

// BoundProgress provides Fyne data bindings for the status area.
type BoundProgress struct {
	// Progress bar value (0.0 to 1.0)
	Progress binding.Float

	// Progress info text (e.g., "3/10")
	ProgressInfo binding.String

	// Main status text
	MainStatus binding.String
}

// NewBoundProgress creates a new BoundProgress with default values.
func NewBoundProgress() *BoundProgress {
	b := &BoundProgress{
		Progress:     binding.NewFloat(),
		ProgressInfo: binding.NewString(),
		MainStatus:   binding.NewString(),
	}
	_ = b.MainStatus.Set("Ready")
	return b
}

// SetProgress updates the progress bindings.
func (b *BoundProgress) SetProgress(fraction float32, info string) {
	_ = b.Progress.Set(float64(fraction))
	_ = b.ProgressInfo.Set(info)
}

// SetMainStatus updates the main status binding.
func (b *BoundProgress) SetMainStatus(text string) {
	_ = b.MainStatus.Set(text)
}

// BoundState provides all Fyne data bindings for the application.
type BoundState struct {
	Input    *BoundInput
	Progress *BoundProgress
}

// NewBoundState creates a new BoundState with all bindings initialized.
func NewBoundState() *BoundState {
	return &BoundState{
		Input:    NewBoundInput(),
		Progress: NewBoundProgress(),
	}
}

// SyncFromState copies values from State to the bindings.
// Call this after modifying State to update bound widgets.
func (b *BoundState) SyncFromState(s *State) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_ = b.Input.RootPath.Set(s.RootPath)
	_ = b.Input.Folder.Set(s.Folder)
	_ = b.Input.Mask.Set(s.Mask)
	_ = b.Input.TargetEncoding.Set(s.TargetEncoding)
	_ = b.Input.Backup.Set(s.Backup)

	_ = b.Progress.Progress.Set(float64(s.Progress))
	_ = b.Progress.ProgressInfo.Set(s.ProgressInfo)
	_ = b.Progress.MainStatus.Set(s.MainStatus)
}

// SyncToState copies the user's inputs from the bindings to State.
// Call this before building a request.
func (b *BoundState) SyncToState(s *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.RootPath, _ = b.Input.RootPath.Get()
	s.Folder, _ = b.Input.Folder.Get()
	s.Mask, _ = b.Input.Mask.Get()
	s.TargetEncoding, _ = b.Input.TargetEncoding.Get()
	s.Backup, _ = b.Input.Backup.Get()
}
