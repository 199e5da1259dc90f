package css

import (
	"fmt"
	"strconv"
	"strings"
)

// treeWriter produces indented outline, one node per line.
type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) text(depth int, label, value string) {
	if value == "" {
		return
	}
	tw.line(depth, "%s: %s", label, strconv.Quote(value))
}

// Dump returns outline of the syntax tree for troubleshooting: node types with
// conditions and selectors, declarations are only counted.
func (s *Stylesheet) Dump() string {
	tw := &treeWriter{}
	root := "rules"
	if s.Type == TypeStylesheet {
		root = string(TypeStylesheet)
	}
	rules := s.RootRules()
	tw.line(0, "%s (%d)", root, len(rules))
	for _, e := range s.Errors() {
		tw.text(1, "error", e)
	}
	for _, r := range rules {
		tw.rule(r, 1)
	}
	return tw.w.String()
}

func (tw *treeWriter) rule(r *Rule, depth int) {
	if r == nil {
		tw.line(depth, "<nil>")
		return
	}
	switch {
	case len(r.Declarations) > 0:
		tw.line(depth, "%s [%d declarations]", r.Type, len(r.Declarations))
	default:
		tw.line(depth, "%s", r.Type)
	}
	tw.text(depth+1, "media", r.Media)
	tw.text(depth+1, "supports", r.Supports)
	tw.text(depth+1, "name", r.Name)
	tw.text(depth+1, "prelude", r.Prelude)
	tw.text(depth+1, "import", r.Import)
	if len(r.Selectors) > 0 {
		tw.text(depth+1, "selectors", strings.Join(r.Selectors, ", "))
	}
	for _, c := range r.Rules {
		tw.rule(c, depth+1)
	}
}
