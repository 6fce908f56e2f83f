// Package convert rewrites a file's bytes from their detected source encoding
// into a target encoding, optionally writing an untouched backup first.
package convert

import (
	"bytes"
	"io/fs"
	"os"

	"EncodingConverter/internal/charset"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/log"

	"golang.org/x/crypto/blake2b"
)

// BackupSuffix is appended to a file's name to form its backup name.
const BackupSuffix = "_backup"

// BackupPath returns the backup location for path: same directory,
// original name plus BackupSuffix.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Status is the per-file disposition of a conversion.
type Status int

const (
	StatusConverted Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options controls a single conversion.
type Options struct {
	MakeBackup      bool
	OverwriteBackup bool // replace an existing backup instead of refusing
	VerifyBackup    bool // re-read the backup and compare digests
	Lossy           bool // substitute unrepresentable characters
}

// Result describes what happened to one file.
type Result struct {
	Status     Status
	Detection  charset.Detection
	BackupPath string // set only when a backup was written
	BytesIn    int
	BytesOut   int

	// Warning is non-nil for a skipped file: the reason it was left alone.
	Warning error
}

// Converter performs conversions with a fixed detector and registry.
// It holds no per-file state and may be shared.
type Converter struct {
	detector charset.Detector
	registry *charset.Registry
}

// New returns a Converter. A nil detector means the chardet-backed default
// and a nil registry means charset.Supported().
func New(detector charset.Detector, registry *charset.Registry) *Converter {
	if registry == nil {
		registry = charset.Supported()
	}
	if detector == nil {
		detector = charset.NewDetector(registry)
	}
	return &Converter{detector: detector, registry: registry}
}

// ConvertFile reads path, backs it up next to itself when requested and
// rewrites it in target.
func (c *Converter) ConvertFile(path, target string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: StatusFailed}, errors.NewConversionError(errors.ErrPathNotFound, path, errors.NewFileError("read", path, err))
		}
		return Result{Status: StatusFailed}, errors.NewConversionError(errors.ErrReadFailed, path, errors.NewFileError("read", path, err))
	}
	return c.Convert(data, target, opts, BackupPath(path), path)
}

// Convert processes data, the current contents of outputPath.
//
// The backup (if requested) is written before outputPath is touched. When
// detection is inconclusive outputPath is left as is and the result is
// StatusSkipped with a warning; that is not an error.
func (c *Converter) Convert(data []byte, target string, opts Options, backupPath, outputPath string) (Result, error) {
	res := Result{Status: StatusFailed, BytesIn: len(data)}

	dst, err := c.registry.Lookup(target)
	if err != nil {
		return res, errors.NewConversionError(errors.ErrReencodeFailed, outputPath, err)
	}

	res.Detection = c.detector.Detect(data)

	if opts.MakeBackup {
		if err := writeBackup(data, backupPath, outputPath, opts); err != nil {
			return res, err
		}
		res.BackupPath = backupPath
	}

	if !res.Detection.Conclusive {
		log.Warn("Encoding not detected, leaving file unchanged",
			log.Path(outputPath),
			log.String("guess", res.Detection.Charset),
			log.Int("confidence", res.Detection.Confidence))
		res.Status = StatusSkipped
		res.Warning = errors.NewConversionError(errors.ErrDetectionInconclusive, outputPath, nil)
		return res, nil
	}

	src, err := c.registry.Lookup(res.Detection.Charset)
	if err != nil {
		log.Warn("Detected encoding cannot be decoded, leaving file unchanged",
			log.Path(outputPath), log.String("detected", res.Detection.Charset))
		res.Status = StatusSkipped
		res.Warning = errors.NewConversionError(errors.ErrDetectionInconclusive, outputPath, err)
		return res, nil
	}

	text, err := src.Decode(data)
	if err != nil {
		return res, errors.NewConversionError(errors.ErrReencodeFailed, outputPath, err)
	}
	out, err := dst.Encode(text, opts.Lossy)
	if err != nil {
		return res, errors.NewConversionError(errors.ErrReencodeFailed, outputPath, err)
	}

	if err := writeOutput(outputPath, out); err != nil {
		return res, err
	}

	res.Status = StatusConverted
	res.BytesOut = len(out)
	log.Debug("Converted",
		log.Path(outputPath),
		log.String("from", src.Name),
		log.String("to", dst.Name),
		log.Int("bytes_in", res.BytesIn),
		log.Int("bytes_out", res.BytesOut))
	return res, nil
}

func writeBackup(data []byte, backupPath, outputPath string, opts Options) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(outputPath); err == nil {
		perm = info.Mode().Perm()
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if opts.OverwriteBackup {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(backupPath, flags, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.NewConversionError(errors.ErrBackupExists, backupPath, errors.NewFileError("backup", backupPath, err))
		}
		return errors.NewConversionError(errors.ErrBackupWriteFailed, backupPath, errors.NewFileError("backup", backupPath, err))
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.NewConversionError(errors.ErrBackupWriteFailed, backupPath, errors.NewFileError("backup", backupPath, err))
	}
	if err := f.Close(); err != nil {
		return errors.NewConversionError(errors.ErrBackupWriteFailed, backupPath, errors.NewFileError("backup", backupPath, err))
	}

	if opts.VerifyBackup {
		if err := verifyBackup(data, backupPath); err != nil {
			return err
		}
	}
	log.Debug("Backup written", log.Path(backupPath), log.Int("bytes", len(data)))
	return nil
}

var errBackupMismatch = errors.New("backup digest mismatch")

func verifyBackup(data []byte, backupPath string) error {
	written, err := os.ReadFile(backupPath)
	if err != nil {
		return errors.NewConversionError(errors.ErrBackupWriteFailed, backupPath, errors.NewFileError("verify", backupPath, err))
	}
	want := blake2b.Sum256(data)
	got := blake2b.Sum256(written)
	if !bytes.Equal(want[:], got[:]) {
		return errors.NewConversionError(errors.ErrBackupWriteFailed, backupPath, errors.NewFileError("verify", backupPath, errBackupMismatch))
	}
	return nil
}

// writeOutput overwrites path in place, keeping its permission bits.
func writeOutput(path string, out []byte) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, out, perm); err != nil {
		return errors.NewConversionError(errors.ErrWriteFailed, path, errors.NewFileError("write", path, err))
	}
	return nil
}
