package frontmatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func TestLineParser(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "simple pairs",
			body: "name: foo\ndescription: bar baz",
			want: map[string]any{"name": "foo", "description": "bar baz"},
		},
		{
			name: "blank and comment lines skipped",
			body: "# leading comment\n\nname: foo\n   # indented comment\ndescription: bar",
			want: map[string]any{"name": "foo", "description": "bar"},
		},
		{
			name: "splits on first colon",
			body: "description: see: https://example.com",
			want: map[string]any{"description": "see: https://example.com"},
		},
		{
			name: "empty value",
			body: "description:",
			want: map[string]any{"description": ""},
		},
		{
			name: "literal block",
			body: "description: |\n  line one\n  line two",
			want: map[string]any{"description": "line one\nline two"},
		},
		{
			name: "folded block",
			body: "description: >\n  line one\n  line two",
			want: map[string]any{"description": "line one line two"},
		},
		{
			name: "tab indented block",
			body: "description: |\n\tfirst\n\tsecond",
			want: map[string]any{"description": "first\nsecond"},
		},
		{
			name: "block ends at unindented line",
			body: "description: >\n  folded\n  text\nname: foo",
			want: map[string]any{"description": "folded text", "name": "foo"},
		},
		{
			name: "empty trailing block",
			body: "name: foo\ndescription: |",
			want: map[string]any{"name": "foo", "description": ""},
		},
		{
			name: "block ends at blank line",
			body: "description: |\n  one\n\n  two: x",
			want: map[string]any{"description": "one", "two": "x"},
		},
		{
			name: "last write wins",
			body: "name: first\nname: second",
			want: map[string]any{"name": "second"},
		},
		{
			name: "empty body",
			body: "",
			want: map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineParser{}.Parse(lines(tt.body))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLineParserErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLine int
	}{
		{"no colon", "name: foo\njust some text", 2},
		{"empty key", ": value", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LineParser{}.Parse(lines(tt.body))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
			if fe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", fe.Line, tt.wantLine)
			}
		})
	}
}

func TestYAMLParser(t *testing.T) {
	t.Run("scalars keep their decoded type", func(t *testing.T) {
		got, err := YAMLParser{}.Parse(lines("name: foo\nversion: 1.0\ncount: 3\nenabled: true"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		want := map[string]any{"name": "foo", "version": 1.0, "count": 3, "enabled": true}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse = %#v, want %#v", got, want)
		}
	})

	t.Run("quoted and block scalars", func(t *testing.T) {
		got, err := YAMLParser{}.Parse(lines("name: \"foo\"\ndescription: |\n  line one\n  line two"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got["name"] != "foo" {
			t.Errorf("name = %q", got["name"])
		}
		if d, _ := got["description"].(string); strings.TrimRight(d, "\n") != "line one\nline two" {
			t.Errorf("description = %q", got["description"])
		}
	})

	t.Run("empty and null bodies", func(t *testing.T) {
		for _, body := range []string{"", "   ", "# only a comment", "~"} {
			got, err := YAMLParser{}.Parse(lines(body))
			if err != nil {
				t.Fatalf("Parse(%q): %v", body, err)
			}
			if len(got) != 0 {
				t.Errorf("Parse(%q) = %v, want empty", body, got)
			}
		}
	})

	errCases := []struct {
		name string
		body string
	}{
		{"sequence document", "- a\n- b"},
		{"scalar document", "just text"},
		{"nested mapping value", "metadata:\n  owner: me"},
		{"sequence value", "tags: [a, b]"},
		{"malformed", "description: Use when: needed"},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YAMLParser{}.Parse(lines(tt.body))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
		})
	}
}

func TestDefaultChainRejectsNestedValues(t *testing.T) {
	bodies := []string{
		"name: foo\ndescription:\n  a: b",
		"name: foo\ndescription:\n  - one\n  - two",
		"name: foo\ntags: [a, b]",
	}
	for _, body := range bodies {
		got, err := DefaultChain().Parse(lines(body))
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Parse(%q) = %v, %v; want *FormatError", body, got, err)
		}
		if !strings.Contains(fe.Msg, "must be a scalar") {
			t.Errorf("Parse(%q) error = %q", body, fe.Msg)
		}
	}
}

// Both parsers must agree on flat, unquoted string pairs.
func TestParsersAgreeOnSimpleScalars(t *testing.T) {
	bodies := []string{
		"name: foo\ndescription: Packages foo files",
		"name: my-skill-2\ndescription: A longer sentence, with punctuation.",
		"# comment\nname: x\n\ndescription: y",
	}
	for _, body := range bodies {
		y, err := YAMLParser{}.Parse(lines(body))
		if err != nil {
			t.Fatalf("YAMLParser(%q): %v", body, err)
		}
		l, err := LineParser{}.Parse(lines(body))
		if err != nil {
			t.Fatalf("LineParser(%q): %v", body, err)
		}
		if !reflect.DeepEqual(y, l) {
			t.Errorf("parsers disagree on %q: yaml=%v line=%v", body, y, l)
		}
	}
}

type failingParser struct{ err error }

func (p failingParser) Parse([]string) (map[string]any, error) { return nil, p.err }

type fixedParser map[string]any

func (p fixedParser) Parse([]string) (map[string]any, error) { return p, nil }

func TestChain(t *testing.T) {
	t.Run("first success wins", func(t *testing.T) {
		c := Chain{fixedParser{"a": "1"}, fixedParser{"b": "2"}}
		got, err := c.Parse(nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, ok := got["a"]; !ok {
			t.Errorf("Parse = %v, want first parser's result", got)
		}
	})

	t.Run("falls through failures", func(t *testing.T) {
		c := Chain{failingParser{errors.New("boom")}, fixedParser{"b": "2"}}
		got, err := c.Parse(nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got["b"] != "2" {
			t.Errorf("Parse = %v", got)
		}
	})

	t.Run("returns last error", func(t *testing.T) {
		last := errors.New("last")
		c := Chain{failingParser{errors.New("first")}, failingParser{last}}
		_, err := c.Parse(nil)
		if !errors.Is(err, last) {
			t.Errorf("err = %v, want %v", err, last)
		}
	})

	t.Run("final error stops the chain", func(t *testing.T) {
		final := &FormatError{Msg: "nested", final: true}
		c := Chain{failingParser{final}, fixedParser{"b": "2"}}
		_, err := c.Parse(nil)
		if err != final {
			t.Errorf("err = %v, want %v", err, final)
		}
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := Chain{}.Parse(nil)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("expected *FormatError, got %v", err)
		}
	})
}
