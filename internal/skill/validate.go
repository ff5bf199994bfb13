package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/skillpack/internal/frontmatter"
)

// Validate checks the skill directory at dir and returns its validated name.
func Validate(dir string) (string, error) {
	md, err := Load(dir)
	if err != nil {
		return "", err
	}
	return md.Name, nil
}

// Load checks the skill directory at dir and returns its validated metadata.
func Load(dir string) (*Metadata, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: dir, Msg: fmt.Sprintf("Skill directory does not exist: %s", dir)}
		}
		return nil, &IOError{Op: "stat", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Path: dir, Msg: fmt.Sprintf("Skill path is not a directory: %s", dir)}
	}

	skillMD := filepath.Join(dir, FileName)
	mdInfo, err := os.Stat(skillMD)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &IOError{Op: "stat", Path: skillMD, Err: err}
	}
	if err != nil || !mdInfo.Mode().IsRegular() {
		return nil, &NotFoundError{Path: skillMD, Msg: "SKILL.md is required in the skill directory."}
	}

	fm, err := frontmatter.ParseFile(skillMD)
	if err != nil {
		var fe *frontmatter.FormatError
		if errors.As(err, &fe) {
			return nil, fe
		}
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		return nil, &IOError{Op: "read", Path: skillMD, Err: cause}
	}

	md, err := CheckFrontmatter(fm)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &IOError{Op: "resolve", Path: dir, Err: err}
	}
	folder := filepath.Base(abs)
	if md.Name != folder {
		return nil, validationErrorf("Skill name '%s' must match folder name '%s'.", md.Name, folder)
	}

	return md, nil
}

// CheckFrontmatter applies the field rules to parsed frontmatter. Values are
// converted to strings and trimmed before they are checked.
func CheckFrontmatter(fm map[string]any) (*Metadata, error) {
	fields := make(map[string]string, len(fm))
	for k, v := range fm {
		fields[k] = stringify(v)
	}

	issues, err := CheckRules(fields)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, issueError(issues[0], fields)
	}

	return &Metadata{
		Name:        fields[KeyName],
		Description: fields[KeyDescription],
	}, nil
}

func issueError(issue Issue, fields map[string]string) *ValidationError {
	switch issue.Keyword {
	case "additionalProperties":
		return validationErrorf("Frontmatter contains unsupported fields: %s", quoteList(UnsupportedKeys(fields)))
	case "required":
		return validationErrorf("Frontmatter must include 'name' and 'description'.")
	case "minLength":
		return validationErrorf("'name' and 'description' must be non-empty.")
	case "maxLength", "pattern":
		return validationErrorf("Invalid skill name '%s'. Use lowercase letters, digits, and hyphens (at most 64 characters).", fields[KeyName])
	default:
		if issue.Path == "" {
			return validationErrorf("Invalid frontmatter: %s", issue.Message)
		}
		return validationErrorf("Invalid frontmatter at %s: %s", issue.Path, issue.Message)
	}
}

// UnsupportedKeys returns the sorted keys of fields outside AllowedKeys.
func UnsupportedKeys[V any](fields map[string]V) []string {
	var extra []string
	for k := range fields {
		if !slices.Contains(AllowedKeys, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return extra
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
