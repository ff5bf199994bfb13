package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/agentx-labs/skillpack/internal/logger"
	"github.com/agentx-labs/skillpack/internal/platform"
)

// archivePerm is the mode of a finished archive.
const archivePerm os.FileMode = 0644

// EntryName returns the archive entry name for a file: the skill name
// followed by the slash-separated relative path.
func EntryName(skillName, rel string) string {
	return path.Join(skillName, filepath.ToSlash(rel))
}

// WriteArchive writes files into a deflate-compressed zip at outputPath,
// each under <skillName>/. The archive is built in a temporary file next to
// outputPath and moved into place only after it has been closed
// successfully, so a failed run never leaves a truncated archive behind and
// an existing archive is replaced whole.
func WriteArchive(outputPath, skillName string, files []File) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary archive: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	zw := zip.NewWriter(tmp)
	for _, f := range files {
		if err := addFile(zw, f.Path, EntryName(skillName, f.Rel)); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	if err := platform.ReplaceFile(tmpPath, outputPath, archivePerm); err != nil {
		return err
	}
	committed = true
	return nil
}

// addFile copies one file into the archive, keeping its modification time
// and mode.
func addFile(zw *zip.Writer, src, entryName string) error {
	in, err := os.Open(src) //#nosec G304 -- path from the skill directory walk
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("building header for %s: %w", src, err)
	}
	hdr.Name = entryName
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", entryName, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("writing %s: %w", entryName, err)
	}

	logger.L.WithField("entry", entryName).Debug("added archive entry")
	return nil
}
