package skill

import "fmt"

// NotFoundError reports a missing skill directory or SKILL.md.
type NotFoundError struct {
	Path string
	Msg  string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ValidationError reports frontmatter that parses but breaks a field rule.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: printer.Sprintf(format, args...)}
}

// IOError reports a filesystem failure while reading a skill or writing its
// archive. The underlying error is available through errors.Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
