package packager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/skillpack/internal/logger"
	"github.com/agentx-labs/skillpack/internal/skill"
)

// Extension is the file extension of a packaged skill.
const Extension = ".skill"

// Options configures packaging.
type Options struct {
	// OutputDir receives the archive. Empty means the current directory.
	OutputDir string

	// Exclude holds extra glob patterns to leave out of the archive, on top
	// of the built-in exclusions.
	Exclude []string
}

// Result describes a packaged (or planned) skill archive.
type Result struct {
	Name       string
	OutputPath string
	// Entries are the archive entry names, in the order they are written.
	Entries []string
}

// Package validates the skill at skillDir and writes <name>.skill into the
// output directory, replacing any archive already there.
func Package(skillDir string, opts Options) (*Result, error) {
	p, err := planFiles(skillDir, opts, true)
	if err != nil {
		return nil, err
	}

	if err := WriteArchive(p.result.OutputPath, p.result.Name, p.files); err != nil {
		return nil, &skill.IOError{Op: "write", Path: p.result.OutputPath, Err: err}
	}
	return p.result, nil
}

// ListFiles validates the skill at skillDir and returns what Package would
// write, without creating the archive or the output directory.
func ListFiles(skillDir string, opts Options) (*Result, error) {
	p, err := planFiles(skillDir, opts, false)
	if err != nil {
		return nil, err
	}
	return p.result, nil
}

type packagePlan struct {
	result *Result
	files  []File
}

func planFiles(skillDir string, opts Options, createOutputDir bool) (*packagePlan, error) {
	name, err := skill.Validate(skillDir)
	if err != nil {
		return nil, err
	}

	filter, err := NewFilter(opts.Exclude...)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir, err = os.Getwd()
		if err != nil {
			return nil, &skill.IOError{Op: "getwd", Path: ".", Err: err}
		}
	}
	if createOutputDir {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return nil, &skill.IOError{Op: "create", Path: outDir, Err: err}
		}
	}
	outputPath := filepath.Join(outDir, name+Extension)

	files, err := Collect(skillDir, filter)
	if err != nil {
		return nil, &skill.IOError{Op: "walk", Path: skillDir, Err: err}
	}
	files, err = withoutPath(files, outputPath)
	if err != nil {
		return nil, &skill.IOError{Op: "resolve", Path: outputPath, Err: err}
	}

	entries := make([]string, len(files))
	for i, f := range files {
		entries[i] = EntryName(name, f.Rel)
	}

	return &packagePlan{
		result: &Result{Name: name, OutputPath: outputPath, Entries: entries},
		files:  files,
	}, nil
}

// withoutPath drops the archive itself from the file set, which matters when
// the output directory is inside the skill directory. Files are compared by
// identity so symlinked skill or output directories still match.
func withoutPath(files []File, outputPath string) ([]File, error) {
	out, err := os.Stat(outputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return files, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outputPath, err)
	}
	kept := files[:0]
	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err == nil && os.SameFile(info, out) {
			logger.L.WithField("file", f.Rel).Debug("skipping previous archive")
			continue
		}
		kept = append(kept, f)
	}
	return kept, nil
}
