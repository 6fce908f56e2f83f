package app

import (
	"strings"

	"EncodingConverter/internal/charset"
	"EncodingConverter/internal/convert"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/walker"
)

// ConversionRequest is everything a run needs. It is a value type; the
// runner works on its own copy.
type ConversionRequest struct {
	RootPath       string
	Mode           walker.Mode
	Mask           string // ignored in single file mode
	TargetEncoding string
	MakeBackup     bool

	OverwriteBackup bool
	VerifyBackup    bool
	Lossy           bool
}

// Options returns the per-file converter options for this request.
func (r ConversionRequest) Options() convert.Options {
	return convert.Options{
		MakeBackup:      r.MakeBackup,
		OverwriteBackup: r.OverwriteBackup,
		VerifyBackup:    r.VerifyBackup,
		Lossy:           r.Lossy,
	}
}

// IsNoOp reports whether the request has no root to work on.
func (r ConversionRequest) IsNoOp() bool {
	return r.RootPath == ""
}

// BuildRequest snapshots the state into a request. The root path is
// trimmed and the target encoding canonicalized when it is known; an
// unknown target is kept as typed and fails per file at conversion time.
func BuildRequest(s *State) (ConversionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := strings.TrimSpace(s.TargetEncoding)
	if target == "" {
		return ConversionRequest{}, errors.NewValidationError("encoding", "no target encoding selected")
	}
	if canonical := charset.Supported().Canonical(target); canonical != "" {
		target = canonical
	}

	req := ConversionRequest{
		RootPath:        strings.TrimSpace(s.RootPath),
		Mode:            walker.ModeSingleFile,
		TargetEncoding:  target,
		MakeBackup:      s.Backup,
		OverwriteBackup: s.OverwriteBackup,
		VerifyBackup:    s.VerifyBackup,
		Lossy:           s.Lossy,
	}
	if s.Folder {
		req.Mode = walker.ModeFolder
		req.Mask = strings.TrimSpace(s.Mask)
	}
	return req, nil
}
