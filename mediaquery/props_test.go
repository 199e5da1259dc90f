package mediaquery

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		cond      string
		camelCase bool
		keys      []string
		values    []string
	}{
		{
			name:   "min and max",
			cond:   "(min-width: 1000px) and (max-width: 2000px)",
			keys:   []string{"min-width", "max-width"},
			values: []string{"1000px", "2000px"},
		},
		{
			name:      "camel case",
			cond:      "(min-width: 1000px) and (max-width: 2000px)",
			camelCase: true,
			keys:      []string{"minWidth", "maxWidth"},
			values:    []string{"1000px", "2000px"},
		},
		{
			name: "missing colon",
			cond: "(min-width 1000px)",
		},
		{
			name: "no groups",
			cond: "print",
		},
		{
			name: "empty group",
			cond: "screen and ()",
		},
		{
			name: "empty value",
			cond: "(min-width: )",
		},
		{
			name: "empty key",
			cond: "(: 10px)",
		},
		{
			name: "unclosed group",
			cond: "(min-width: 10px",
		},
		{
			name:   "semicolon separated clauses",
			cond:   "(min-width: 10px; orientation: landscape; bogus)",
			keys:   []string{"min-width", "orientation"},
			values: []string{"10px", "landscape"},
		},
		{
			name:   "media type prefix",
			cond:   "only screen and (-webkit-min-device-pixel-ratio: 2)",
			keys:   []string{"-webkit-min-device-pixel-ratio"},
			values: []string{"2"},
		},
		{
			name:      "vendor prefix camel case",
			cond:      "(-webkit-min-device-pixel-ratio: 2)",
			camelCase: true,
			keys:      []string{"WebkitMinDevicePixelRatio"},
			values:    []string{"2"},
		},
		{
			name:   "later value wins keeping first position",
			cond:   "(min-width: 10px) and (orientation: portrait) and (min-width: 20px)",
			keys:   []string{"min-width", "orientation"},
			values: []string{"20px", "portrait"},
		},
		{
			name:   "split on first colon only",
			cond:   "(aspect-ratio: 16:9)",
			keys:   []string{"aspect-ratio"},
			values: []string{"16:9"},
		},
		{
			name:   "whitespace trimmed",
			cond:   "(   max-width   :   500px   )",
			keys:   []string{"max-width"},
			values: []string{"500px"},
		},
		{
			name:   "unbalanced parens",
			cond:   "(min-width: 10px and (max-width: 20px)",
			keys:   []string{"min-width"},
			values: []string{"10px and (max-width: 20px"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Parse(tt.cond, tt.camelCase)
			if props.Len() != len(tt.keys) {
				t.Fatalf("Parse(%q) = %s, want %d entries", tt.cond, props, len(tt.keys))
			}
			if got := props.Keys(); !slices.Equal(got, tt.keys) {
				t.Errorf("Keys() = %v, want %v", got, tt.keys)
			}
			for i, k := range tt.keys {
				if v, ok := props.Get(k); !ok || v != tt.values[i] {
					t.Errorf("Get(%q) = %q, %v; want %q", k, v, ok, tt.values[i])
				}
			}
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"min-width":      "minWidth",
		"width":          "width",
		"max-device-w":   "maxDeviceW",
		"-moz-ratio":     "MozRatio",
		"line-2":         "line-2",
		"trailing-":      "trailing-",
		"double--dash":   "double-Dash",
		"":               "",
		"prefers-ümlaut": "prefersÜmlaut",
	}
	for in, want := range tests {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProps_Nil(t *testing.T) {
	var p *Props
	if p.Len() != 0 || p.Has("min-width") || len(p.Keys()) != 0 || len(p.Map()) != 0 {
		t.Error("nil Props must behave as empty map")
	}
	if p.String() != "{}" {
		t.Errorf("String() = %q, want {}", p.String())
	}
}

func TestProps_Render(t *testing.T) {
	p := Parse("(max-width: 2000px) and (min-width: 1000px)", false)

	if p.String() != "{max-width: 2000px, min-width: 1000px}" {
		t.Errorf("String() = %q", p.String())
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if string(data) != `{"max-width":"2000px","min-width":"1000px"}` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	m := p.Map()
	if len(m) != 2 || m["min-width"] != "1000px" {
		t.Errorf("Map() = %v", m)
	}
}

func TestProps_AllStopsEarly(t *testing.T) {
	p := Parse("(a: 1) (b: 2) (c: 3)", false)
	count := 0
	for range p.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected iteration to stop after first element, got %d", count)
	}
}
