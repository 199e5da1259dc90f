package css

import "strings"

// NodeType discriminates stylesheet nodes. Values match node types of the
// reworkcss JSON AST so trees can be exchanged with tools producing it.
type NodeType string

const (
	TypeStylesheet  NodeType = "stylesheet"
	TypeRule        NodeType = "rule"
	TypeDeclaration NodeType = "declaration"
	TypeComment     NodeType = "comment"
	TypeMedia       NodeType = "media"
	TypeSupports    NodeType = "supports"
	TypeImport      NodeType = "import"
	TypeCharset     NodeType = "charset"
	TypeNamespace   NodeType = "namespace"
	TypeFontFace    NodeType = "font-face"
	TypePage        NodeType = "page"
	TypeKeyframes   NodeType = "keyframes"
	TypeDocument    NodeType = "document"
	TypeHost        NodeType = "host"
	TypeAtRule      NodeType = "at-rule" // any other at-rule
)

// atRuleType maps at-keyword (without "@" and vendor prefix) to node type.
func atRuleType(name string) NodeType {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "-") {
		if i := strings.Index(name[1:], "-"); i >= 0 {
			name = name[i+2:]
		}
	}
	switch name {
	case "media":
		return TypeMedia
	case "supports":
		return TypeSupports
	case "import":
		return TypeImport
	case "charset":
		return TypeCharset
	case "namespace":
		return TypeNamespace
	case "font-face":
		return TypeFontFace
	case "page":
		return TypePage
	case "keyframes":
		return TypeKeyframes
	case "document":
		return TypeDocument
	case "host":
		return TypeHost
	default:
		return TypeAtRule
	}
}

// Declaration is a single "property: value" pair or a comment inside a
// declaration block.
type Declaration struct {
	Type     NodeType `json:"type"`
	Property string   `json:"property,omitempty"`
	Value    string   `json:"value,omitempty"`
	Comment  string   `json:"comment,omitempty"`
}

// Rule is a stylesheet node: a ruleset, a comment or an at-rule.
// Media holds raw condition of @media rules and is empty for everything else,
// Rules holds children of block at-rules (@media, @supports, @document...).
type Rule struct {
	Type         NodeType       `json:"type"`
	Selectors    []string       `json:"selectors,omitempty"`
	Declarations []*Declaration `json:"declarations,omitempty"`
	Media        string         `json:"media,omitempty"`
	Supports     string         `json:"supports,omitempty"`
	Import       string         `json:"import,omitempty"`
	Charset      string         `json:"charset,omitempty"`
	Namespace    string         `json:"namespace,omitempty"`
	Name         string         `json:"name,omitempty"`    // at-keyword of generic at-rules, e.g. "-webkit-keyframes"
	Prelude      string         `json:"prelude,omitempty"` // generic at-rule prelude
	Comment      string         `json:"comment,omitempty"`
	Statement    bool           `json:"statement,omitempty"` // generic at-rule without block
	Rules        []*Rule        `json:"rules,omitempty"`
}

// IsMedia returns true for rules carrying a media condition.
func (r *Rule) IsMedia() bool {
	return r != nil && r.Media != ""
}

// RuleList is list of top level rules of a "stylesheet" root.
type RuleList struct {
	Rules         []*Rule  `json:"rules"`
	ParsingErrors []string `json:"parsingErrors,omitempty"`
}

// Stylesheet is the AST root. When Type is TypeStylesheet rules are kept under
// Stylesheet, otherwise the root itself is a bare rule list and rules are kept
// in Rules.
type Stylesheet struct {
	Type       NodeType  `json:"type,omitempty"`
	Stylesheet *RuleList `json:"stylesheet,omitempty"`
	Rules      []*Rule   `json:"rules,omitempty"`
}

// NewStylesheet creates empty "stylesheet" root.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		Type:       TypeStylesheet,
		Stylesheet: &RuleList{Rules: make([]*Rule, 0)},
	}
}

// RootRules returns top level rule sequence selected by root type.
func (s *Stylesheet) RootRules() []*Rule {
	if s == nil {
		return nil
	}
	if s.Type == TypeStylesheet {
		if s.Stylesheet == nil {
			return nil
		}
		return s.Stylesheet.Rules
	}
	return s.Rules
}

// SetRootRules stores top level rule sequence where RootRules finds it.
func (s *Stylesheet) SetRootRules(rules []*Rule) {
	if s.Type == TypeStylesheet {
		if s.Stylesheet == nil {
			s.Stylesheet = &RuleList{}
		}
		s.Stylesheet.Rules = rules
		return
	}
	s.Rules = rules
}

// Errors returns parsing errors recorded for the stylesheet, if any.
func (s *Stylesheet) Errors() []string {
	if s == nil || s.Stylesheet == nil {
		return nil
	}
	return s.Stylesheet.ParsingErrors
}

// MediaRules returns all top level rules with media condition in source order.
func (s *Stylesheet) MediaRules() []*Rule {
	var rules []*Rule
	for _, r := range s.RootRules() {
		if r.IsMedia() {
			rules = append(rules, r)
		}
	}
	return rules
}

// RulesBySelector returns all top level rulesets containing given selector.
func (s *Stylesheet) RulesBySelector(selector string) []*Rule {
	var matches []*Rule
	for _, r := range s.RootRules() {
		if r.Type != TypeRule {
			continue
		}
		for _, sel := range r.Selectors {
			if sel == selector {
				matches = append(matches, r)
				break
			}
		}
	}
	return matches
}

// GetDeclaration returns value of the last declaration for property.
func (r *Rule) GetDeclaration(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		d := r.Declarations[i]
		if d.Type == TypeDeclaration && d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}
