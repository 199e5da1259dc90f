package css

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads stylesheet AST in JSON form. Both root shapes are accepted:
// {"type":"stylesheet","stylesheet":{"rules":[...]}} and bare {"rules":[...]}.
func DecodeJSON(r io.Reader) (*Stylesheet, error) {
	dec := json.NewDecoder(r)
	sheet := &Stylesheet{}
	if err := dec.Decode(sheet); err != nil {
		return nil, fmt.Errorf("unable to decode stylesheet AST: %w", err)
	}
	if sheet.Type == TypeStylesheet && sheet.Stylesheet == nil {
		sheet.Stylesheet = &RuleList{Rules: make([]*Rule, 0)}
	}
	return sheet, nil
}

// MarshalJSON always emits declarations of nodes owning declaration block,
// empty block is written as [] like reworkcss does.
func (r *Rule) MarshalJSON() ([]byte, error) {
	type plain Rule
	switch r.Type {
	case TypeRule, TypeFontFace, TypePage:
	default:
		return marshal((*plain)(r))
	}

	out := struct {
		Type         NodeType       `json:"type"`
		Selectors    []string       `json:"selectors,omitempty"`
		Declarations []*Declaration `json:"declarations"`
		*plain
	}{r.Type, r.Selectors, r.Declarations, (*plain)(r)}
	if out.Declarations == nil {
		out.Declarations = make([]*Declaration, 0)
	}
	return marshal(out)
}

// marshal is json.Marshal without HTML escaping, "a > b" selectors stay
// readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// EncodeJSON writes stylesheet AST as JSON, indent may be empty for compact
// output.
func (s *Stylesheet) EncodeJSON(w io.Writer, indent string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("unable to encode stylesheet AST: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write stylesheet AST: %w", err)
	}
	return nil
}
