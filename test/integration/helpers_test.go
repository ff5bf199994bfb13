//go:build integration

package integration_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeFile writes content to root/rel, creating parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
}

// setupSkill creates a skill folder named folder whose SKILL.md carries the
// given frontmatter body. Returns the skill directory.
func setupSkill(t *testing.T, folder, frontmatter string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), folder)
	writeFile(t, dir, "SKILL.md", "---\n"+frontmatter+"\n---\n\n# Usage\n\nNot parsed.\n")
	return dir
}

// archiveEntries returns the sorted entry names of the zip at path.
func archiveEntries(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening zip archive: %v", err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
