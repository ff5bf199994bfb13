package packager

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/skillpack/internal/logger"
)

// File is one file selected for packaging.
type File struct {
	Path string // absolute source path
	Rel  string // slash-separated path relative to the skill root
}

// Collect walks root and returns the files the filter keeps, in lexical
// order. Excluded directories are pruned without being read. Symlinks to
// files are followed; symlinks to directories below root are not descended
// into.
func Collect(root string, filter *Filter) ([]File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	// WalkDir does not follow a symlinked root.
	if info, err := os.Lstat(abs); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if abs, err = filepath.EvalSymlinks(abs); err != nil {
			return nil, fmt.Errorf("resolving %s: %w", root, err)
		}
	}

	var files []File
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == abs {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return fmt.Errorf("getting relative path: %w", err)
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if filter.SkipDir(name, rel) {
				logger.L.WithField("dir", rel).Debug("pruning excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if filter.SkipFile(name, rel) {
			logger.L.WithField("file", rel).Debug("skipping excluded file")
			return nil
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("resolving symlink %s: %w", rel, err)
			}
			if target.IsDir() {
				logger.L.WithField("dir", rel).Debug("not following directory symlink")
				return nil
			}
		case !d.Type().IsRegular():
			logger.L.WithField("file", rel).Debug("skipping non-regular file")
			return nil
		}

		files = append(files, File{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
