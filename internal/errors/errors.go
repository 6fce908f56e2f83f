// Package errors provides typed errors for conversion runs.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds a run can produce.
// Use errors.Is(err, errors.ErrBackupWriteFailed) to check for a specific kind.
var (
	// Traversal errors (never surfaced to the user, degrade to empty output)
	ErrPathNotFound        = errors.New("path not found")
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// Backup errors
	ErrBackupWriteFailed = errors.New("backup write failed")
	ErrBackupExists      = errors.New("backup file already exists")

	// Encoding errors
	ErrDetectionInconclusive = errors.New("encoding detection inconclusive")
	ErrReencodeFailed        = errors.New("re-encoding failed")
	ErrUnsupportedEncoding   = errors.New("unsupported encoding")

	// File errors
	ErrReadFailed  = errors.New("read failed")
	ErrWriteFailed = errors.New("write failed")

	// Orchestration errors
	ErrBusy = errors.New("a conversion run is already in progress")
)

// ConversionError represents the failure of a single file's conversion.
// Kind is one of the sentinel errors above; Err is the underlying cause.
type ConversionError struct {
	Kind error
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	if fe, ok := e.Err.(*FileError); ok && fe.Path == e.Path && fe.Err != nil {
		return fmt.Sprintf("%s: %v: %s: %v", e.Path, e.Kind, fe.Op, fe.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewConversionError creates a new ConversionError.
func NewConversionError(kind error, path string, err error) *ConversionError {
	return &ConversionError{Kind: kind, Path: path, Err: err}
}

// FileError represents an error during file operations.
type FileError struct {
	Op   string // Operation: "read", "write", "backup", "verify", "list"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any error in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is errors.New, re-exported so callers need a single import.
func New(text string) error {
	return errors.New(text)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// kinds in the order KindOf checks them. ErrUnsupportedEncoding comes
// before ErrReencodeFailed because it is the more specific of the two.
var kinds = []error{
	ErrBusy,
	ErrPathNotFound,
	ErrDirectoryUnreadable,
	ErrBackupExists,
	ErrBackupWriteFailed,
	ErrDetectionInconclusive,
	ErrUnsupportedEncoding,
	ErrReencodeFailed,
	ErrReadFailed,
	ErrWriteFailed,
}

// KindOf returns the sentinel kind carried by err, or nil if err carries none.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var ce *ConversionError
	if errors.As(err, &ce) && ce.Kind != nil {
		return ce.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// IsFatal reports whether err must abort a run.
// Missing paths, unreadable directories and inconclusive detection are not fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	switch KindOf(err) {
	case ErrPathNotFound, ErrDirectoryUnreadable, ErrDetectionInconclusive:
		return false
	}
	return true
}
