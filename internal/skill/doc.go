// Package skill validates a skill directory: it must contain a SKILL.md whose
// frontmatter declares exactly a name and a description, and the name must
// be a valid skill identity equal to the directory's own base name.
//
// The field rules live in an embedded JSON Schema (schema/frontmatter.schema.json)
// so they can be read and evolved in one place. Failures are reported as
// *NotFoundError, *frontmatter.FormatError, *ValidationError or *IOError.
package skill
