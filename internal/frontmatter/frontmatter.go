package frontmatter

import (
	"fmt"
	"os"
	"strings"
)

// Delimiter opens and closes the frontmatter block.
const Delimiter = "---"

// SplitLines splits content into lines regardless of line ending style.
// A trailing line terminator does not produce an empty final line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// Extract returns the lines strictly between the opening delimiter on line 0
// and the first closing delimiter after it.
func Extract(lines []string) ([]string, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return nil, &FormatError{Msg: "SKILL.md must start with YAML frontmatter '---' (missing opening delimiter)"}
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, &FormatError{Msg: "YAML frontmatter must end with '---' (missing closing delimiter)"}
	}

	return lines[1:end], nil
}

// Parse extracts the frontmatter block from content and parses its body
// with DefaultChain.
func Parse(content string) (map[string]any, error) {
	body, err := Extract(SplitLines(content))
	if err != nil {
		return nil, err
	}
	return DefaultChain().Parse(body)
}

// ParseFile reads the file at path and parses its frontmatter.
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path supplied by the caller
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data))
}
