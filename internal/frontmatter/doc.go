// Package frontmatter extracts and parses the "---" delimited metadata block
// at the head of a SKILL.md file.
//
// Body parsing tries an ordered list of parsers. The default chain decodes
// the body as YAML and, when that fails, falls back to a small line-oriented
// parser that understands "key: value" pairs and "|" / ">" block scalars.
package frontmatter
