package css_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mqfilter/css"
)

func sampleSheet() *css.Stylesheet {
	sheet := css.NewStylesheet()
	sheet.SetRootRules([]*css.Rule{
		{Type: css.TypeComment, Comment: " base "},
		{Type: css.TypeRule, Selectors: []string{"p", ".text"}, Declarations: []*css.Declaration{
			{Type: css.TypeDeclaration, Property: "margin", Value: "0"},
		}},
		{Type: css.TypeMedia, Media: "(min-width: 50px)", Rules: []*css.Rule{
			{Type: css.TypeRule, Selectors: []string{"a"}, Declarations: []*css.Declaration{
				{Type: css.TypeDeclaration, Property: "color", Value: "red"},
			}},
			{Type: css.TypeRule, Selectors: []string{"b"}, Declarations: []*css.Declaration{
				{Type: css.TypeComment, Comment: "x"},
			}},
		}},
		{Type: css.TypeAtRule, Name: "layer", Prelude: "base, theme", Statement: true},
	})
	return sheet
}

func TestWriteTo(t *testing.T) {
	want := `/* base */

p, .text {
  margin: 0;
}

@media (min-width: 50px) {
  a {
    color: red;
  }

  b {
    /*x*/
  }
}

@layer base, theme;
`
	var buf bytes.Buffer
	n, err := sampleSheet().WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteIndented(t *testing.T) {
	sheet := &css.Stylesheet{Rules: []*css.Rule{
		{Type: css.TypeMedia, Media: "print", Rules: []*css.Rule{
			{Type: css.TypeRule, Selectors: []string{"a"}, Declarations: []*css.Declaration{
				{Type: css.TypeDeclaration, Property: "color", Value: "red"},
			}},
		}},
	}}
	var buf bytes.Buffer
	if _, err := sheet.WriteIndented(&buf, "\t"); err != nil {
		t.Fatalf("WriteIndented error: %v", err)
	}
	want := "@media print {\n\ta {\n\t\tcolor: red;\n\t}\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRuleString(t *testing.T) {
	r := &css.Rule{Type: css.TypeFontFace, Name: "font-face", Declarations: []*css.Declaration{
		{Type: css.TypeDeclaration, Property: "font-family", Value: `"Serif"`},
	}}
	if got := r.String(); got != "@font-face {\n  font-family: \"Serif\";\n}\n" {
		t.Errorf("unexpected output %q", got)
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestWriteTo_Error(t *testing.T) {
	_, err := sampleSheet().WriteTo(&failingWriter{after: 2})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestRootRules(t *testing.T) {
	rules := []*css.Rule{{Type: css.TypeRule, Selectors: []string{"a"}}}

	bare := &css.Stylesheet{Rules: rules}
	if len(bare.RootRules()) != 1 {
		t.Error("bare root must expose its own rules")
	}

	wrapped := &css.Stylesheet{Type: css.TypeStylesheet, Rules: rules}
	if len(wrapped.RootRules()) != 0 {
		t.Error("stylesheet root must ignore top level Rules field")
	}
	wrapped.SetRootRules(rules)
	if wrapped.Stylesheet == nil || len(wrapped.Stylesheet.Rules) != 1 {
		t.Error("SetRootRules must create rule list wrapper")
	}

	var none *css.Stylesheet
	if none.RootRules() != nil || none.Errors() != nil {
		t.Error("nil stylesheet must have no rules")
	}
}
