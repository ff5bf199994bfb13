package frontmatter

import (
	"errors"
	"fmt"
)

// FormatError reports structurally malformed frontmatter: a missing
// delimiter, a line that cannot be split into key and value, or a body that
// is not a mapping.
type FormatError struct {
	Msg  string
	Line int // 1-based line within the frontmatter body; 0 when not tied to a line

	// final stops a Chain from trying the remaining parsers.
	final bool
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...), Line: line}
}

// isFinal reports whether err rejects the frontmatter outright rather than
// only failing one parser.
func isFinal(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe) && fe.final
}
