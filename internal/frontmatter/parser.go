package frontmatter

import (
	"strings"

	"github.com/agentx-labs/skillpack/internal/logger"
	"go.yaml.in/yaml/v3"
)

// Parser turns the lines of a frontmatter body into a key/value mapping.
type Parser interface {
	Parse(body []string) (map[string]any, error)
}

// Chain tries each parser in order and returns the first successful result.
// Errors from all but the last parser are discarded, unless the parser marks
// the frontmatter as invalid whatever parser reads it.
type Chain []Parser

// DefaultChain returns the YAML parser followed by the line-oriented fallback.
func DefaultChain() Chain {
	return Chain{YAMLParser{}, LineParser{}}
}

// Parse implements Parser.
func (c Chain) Parse(body []string) (map[string]any, error) {
	if len(c) == 0 {
		return nil, &FormatError{Msg: "no frontmatter parser configured"}
	}

	var err error
	for i, p := range c {
		var m map[string]any
		m, err = p.Parse(body)
		if err == nil {
			return m, nil
		}
		if isFinal(err) {
			return nil, err
		}
		if i < len(c)-1 {
			logger.L.WithError(err).Debugf("frontmatter parser %T failed, falling back", p)
		}
	}
	return nil, err
}

// YAMLParser decodes the body as a YAML mapping of scalar values. A valid
// mapping holding a nested mapping or sequence is rejected with a final
// FormatError, so a Chain does not re-read its indented lines as flat keys.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(body []string) (map[string]any, error) {
	content := strings.TrimSpace(strings.Join(body, "\n"))
	if content == "" {
		return map[string]any{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, &FormatError{Msg: "parsing frontmatter YAML: " + err.Error()}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return map[string]any{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return map[string]any{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &FormatError{Msg: "Frontmatter must be a mapping."}
	}

	out := make(map[string]any, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, formatErrorf(keyNode.Line, "frontmatter key must be a scalar")
		}
		if valNode.Kind == yaml.AliasNode && valNode.Alias != nil {
			valNode = valNode.Alias
		}
		if valNode.Kind != yaml.ScalarNode {
			fe := formatErrorf(valNode.Line, "frontmatter value for %q must be a scalar", keyNode.Value)
			fe.final = true
			return nil, fe
		}

		var v any
		if err := valNode.Decode(&v); err != nil {
			return nil, formatErrorf(valNode.Line, "decoding value for %q: %v", keyNode.Value, err)
		}
		out[keyNode.Value] = v
	}
	return out, nil
}

// LineParser is a dependency-free parser for flat "key: value" frontmatter.
// It skips blank and "#" comment lines and supports "|" (literal) and ">"
// (folded) block scalars whose content lines are indented with a space or tab.
// A repeated key overwrites the earlier value.
type LineParser struct{}

// Parse implements Parser.
func (LineParser) Parse(body []string) (map[string]any, error) {
	out := make(map[string]any)

	i := 0
	for i < len(body) {
		raw := body[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}

		key, value, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, formatErrorf(i+1, "Invalid frontmatter line: '%s'", raw)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, formatErrorf(i+1, "Invalid frontmatter key in line: '%s'", raw)
		}

		if value != "|" && value != ">" {
			out[key] = value
			i++
			continue
		}

		// Block scalar: consume the indented lines that follow.
		i++
		var block []string
		for i < len(body) && isIndented(body[i]) {
			block = append(block, strings.TrimLeft(body[i], " \t"))
			i++
		}

		if value == "|" {
			out[key] = strings.TrimRight(strings.Join(block, "\n"), " \t\r\n")
		} else {
			folded := make([]string, len(block))
			for j, line := range block {
				folded[j] = strings.TrimSpace(line)
			}
			out[key] = strings.TrimSpace(strings.Join(folded, " "))
		}
	}

	return out, nil
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}
