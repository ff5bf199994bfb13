package platform

import (
	"fmt"
	"io"
	"os"
)

// ReplaceFile moves src over dst and applies perm to the result. When the
// rename fails (for example across filesystems) the content is copied
// instead and src is removed.
func ReplaceFile(src, dst string, perm os.FileMode) error {
	if err := Chmod(src, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", src, err)
	}

	if err := os.Rename(src, dst); err != nil {
		if copyErr := copyFile(src, dst, perm); copyErr != nil {
			return fmt.Errorf("moving %s to %s: %w (rename error: %v)", src, dst, copyErr, err)
		}
		os.Remove(src)
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
