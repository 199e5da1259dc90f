package css

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is used by WriteTo.
const DefaultIndent = "  "

// WriteTo writes the stylesheet to w as CSS text in rule order, implementing
// io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return s.WriteIndented(w, DefaultIndent)
}

// WriteIndented is WriteTo with custom indentation unit.
func (s *Stylesheet) WriteIndented(w io.Writer, indent string) (int64, error) {
	sw := &sheetWriter{w: w, indent: indent}
	sw.rules(s.RootRules(), 0)
	return sw.total, sw.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// String returns the CSS text of a single rule.
func (r *Rule) String() string {
	var sb strings.Builder
	sw := &sheetWriter{w: &sb, indent: DefaultIndent}
	sw.rule(r, 0)
	return sb.String()
}

// sheetWriter keeps the first error, all subsequent writes are no-ops.
type sheetWriter struct {
	w      io.Writer
	indent string
	total  int64
	err    error
}

func (sw *sheetWriter) printf(depth int, format string, args ...any) {
	if sw.err != nil {
		return
	}
	n, err := io.WriteString(sw.w, strings.Repeat(sw.indent, depth)+fmt.Sprintf(format, args...))
	sw.total += int64(n)
	sw.err = err
}

func (sw *sheetWriter) rules(rules []*Rule, depth int) {
	first := true
	for _, r := range rules {
		if r == nil {
			continue
		}
		// blank line between items
		if !first {
			sw.printf(0, "\n")
		}
		first = false
		sw.rule(r, depth)
	}
}

func (sw *sheetWriter) rule(r *Rule, depth int) {
	switch r.Type {
	case TypeComment:
		sw.printf(depth, "/*%s*/\n", r.Comment)
	case TypeRule:
		sw.printf(depth, "%s {\n", strings.Join(r.Selectors, ", "))
		sw.declarations(r.Declarations, depth+1)
		sw.printf(depth, "}\n")
	case TypeImport:
		sw.printf(depth, "@import %s;\n", r.Import)
	case TypeCharset:
		sw.printf(depth, "@charset %s;\n", r.Charset)
	case TypeNamespace:
		sw.printf(depth, "@namespace %s;\n", r.Namespace)
	case TypeMedia:
		sw.block(depth, "@media "+r.Media, r)
	case TypeSupports:
		sw.block(depth, "@supports "+r.Supports, r)
	default:
		// everything else written from its keyword and prelude
		head := "@" + r.Name
		if r.Name == "" {
			head = "@" + string(r.Type)
		}
		if r.Prelude != "" {
			head += " " + r.Prelude
		}
		if r.Statement {
			sw.printf(depth, "%s;\n", head)
			return
		}
		sw.block(depth, head, r)
	}
}

func (sw *sheetWriter) block(depth int, head string, r *Rule) {
	sw.printf(depth, "%s {\n", head)
	sw.declarations(r.Declarations, depth+1)
	if len(r.Declarations) > 0 && len(r.Rules) > 0 {
		sw.printf(0, "\n")
	}
	sw.rules(r.Rules, depth+1)
	sw.printf(depth, "}\n")
}

func (sw *sheetWriter) declarations(decls []*Declaration, depth int) {
	for _, d := range decls {
		if d == nil {
			continue
		}
		if d.Type == TypeComment {
			sw.printf(depth, "/*%s*/\n", d.Comment)
			continue
		}
		sw.printf(depth, "%s: %s;\n", d.Property, d.Value)
	}
}
