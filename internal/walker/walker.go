package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/log"
)

// Mode selects whether a run targets one file or a whole folder tree.
type Mode int

const (
	ModeSingleFile Mode = iota
	ModeFolder
)

func (m Mode) String() string {
	switch m {
	case ModeSingleFile:
		return "file"
	case ModeFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Walk returns the absolute paths of the files to process.
//
// In ModeSingleFile the result is exactly [root] and mask is ignored. In
// ModeFolder every directory below root is descended and each non-directory
// entry whose name passes mask is included. Result order is not guaranteed.
//
// An empty or missing root yields nil.
func Walk(root string, mask *Mask, mode Mode) []string {
	if root == "" {
		return nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		log.Warn("Cannot resolve root path", log.Path(root), log.Err(err))
		return nil
	}
	if _, err := os.Stat(abs); err != nil {
		log.Debug("Root path does not exist, nothing to do", log.Path(abs))
		return nil
	}

	if mode == ModeSingleFile {
		return []string{abs}
	}

	var files []string
	walkDir(abs, mask, &files)
	log.Debug("Walk finished",
		log.Path(abs),
		log.String("mask", mask.String()),
		log.Int("files", len(files)))
	return files
}

// walkDir lists dir and recurses. A directory that cannot be listed (or a
// root that is not a directory at all) contributes zero entries.
func walkDir(dir string, mask *Mask, files *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("Skipping unreadable directory", log.Path(dir), log.Err(dirError(dir, err)))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			walkDir(path, mask, files)
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			// Follow links to files, never links to directories.
			info, err := os.Stat(path)
			if err != nil {
				log.Debug("Skipping dangling symlink", log.Path(path))
				continue
			}
			if info.IsDir() {
				log.Debug("Not following directory symlink", log.Path(path))
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
		} else if !entry.Type().IsRegular() {
			continue
		}

		if !mask.Match(entry.Name()) {
			continue
		}
		*files = append(*files, path)
	}
}

// dirError tags a failed directory listing with ErrDirectoryUnreadable.
func dirError(dir string, err error) error {
	return errors.NewFileError("list", dir, fmt.Errorf("%w: %w", errors.ErrDirectoryUnreadable, err))
}
