package css

import (
	"bytes"
	"errors"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// maxParseErrors limits number of recoverable errors before parsing is
// abandoned.
const maxParseErrors = 100

// Parser parses CSS stylesheets into AST.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet with "stylesheet" root. It never
// fails, syntax errors are recorded in Stylesheet.ParsingErrors.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := NewStylesheet()

	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
		log.Debug("Parsing CSS", zap.Int("bytes", len(data)))
	}

	st := &parseState{
		log:      log,
		parser:   css.NewParser(parse.NewInput(bytes.NewReader(data)), false),
		sheet:    sheet,
		preludes: scanPreludes(data),
	}
	_, sheet.Stylesheet.Rules = st.block(false)
	if sheet.Stylesheet.Rules == nil {
		sheet.Stylesheet.Rules = make([]*Rule, 0)
	}

	log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Stylesheet.Rules)), zap.Int("errors", len(sheet.Stylesheet.ParsingErrors)))
	return sheet
}

type parseState struct {
	log      *zap.Logger
	parser   *css.Parser
	sheet    *Stylesheet
	done     bool
	preludes []rawPrelude
	next     int
}

// rawPrelude is at-rule prelude as it appears in the source.
type rawPrelude struct {
	keyword string
	text    string
	// bare is text without comments and whitespace
	bare string
}

// scanPreludes lexes data and collects at-rule preludes in source order.
// Grammar parser drops whitespace after ':' and ',' in preludes, lexer
// tokens keep it.
func scanPreludes(data []byte) []rawPrelude {
	var (
		out     []rawPrelude
		current *rawPrelude
		sb      strings.Builder
		bare    strings.Builder
		level   int
	)
	finish := func() {
		current.text = strings.TrimSpace(sb.String())
		current.bare = squashSpace(bare.String())
		out = append(out, *current)
		current = nil
	}

	l := css.NewLexer(parse.NewInputBytes(data))
	for {
		tt, tok := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if current == nil {
			if tt == css.AtKeywordToken {
				current = &rawPrelude{keyword: string(tok)}
				sb.Reset()
				bare.Reset()
				level = 0
			}
			continue
		}

		end := false
		switch tt {
		case css.SemicolonToken:
			end = level == 0
		case css.LeftBraceToken:
			end = level == 0
			level++
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			level++
		case css.RightBraceToken:
			end = level == 0
			fallthrough
		case css.RightParenthesisToken, css.RightBracketToken:
			if level > 0 {
				level--
			}
		}
		if end {
			finish()
			continue
		}
		sb.Write(tok)
		if tt != css.CommentToken {
			bare.Write(tok)
		}
	}
	if current != nil {
		finish()
	}
	return out
}

// prelude returns source text of at-rule prelude matching keyword and parsed
// tokens. When source and tokens disagree tokens win.
func (st *parseState) prelude(keyword string, values []css.Token) string {
	parsed := tokensToString(values)
	squashed := squashSpace(parsed)
	for i := st.next; i < len(st.preludes); i++ {
		p := st.preludes[i]
		if strings.EqualFold(p.keyword, keyword) && p.bare == squashed {
			st.next = i + 1
			return p.text
		}
	}
	return parsed
}

func squashSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)
}

// fail records parser error, returns true when parsing cannot continue.
func (st *parseState) fail() bool {
	err := st.parser.Err()
	var perr *parse.Error
	if !errors.As(err, &perr) {
		// end of input or reader error
		st.done = true
		return true
	}
	st.sheet.Stylesheet.ParsingErrors = append(st.sheet.Stylesheet.ParsingErrors, perr.Error())
	st.log.Debug("CSS parse error", zap.Error(perr))
	if len(st.sheet.Stylesheet.ParsingErrors) >= maxParseErrors {
		st.log.Debug("Too many CSS parse errors, giving up")
		st.done = true
	}
	return st.done
}

// block parses block content until the end of enclosing at-rule, or until
// the end of input for top level.
func (st *parseState) block(nested bool) ([]*Declaration, []*Rule) {
	var (
		decls     []*Declaration
		rules     []*Rule
		selectors []string
	)

	for !st.done {
		gt, _, data := st.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if st.fail() {
				return decls, rules
			}

		case css.EndAtRuleGrammar:
			if nested {
				return decls, rules
			}
			// stray "}" on top level

		case css.CommentGrammar:
			rules = append(rules, &Rule{Type: TypeComment, Comment: commentText(data)})

		case css.AtRuleGrammar:
			rules = append(rules, st.statement(string(data), st.parser.Values()))

		case css.BeginAtRuleGrammar:
			rule := st.atRule(string(data), st.parser.Values())
			rule.Declarations, rule.Rules = st.block(true)
			st.log.Debug("Parsed @-rule block", zap.String("type", string(rule.Type)), zap.Int("rules", len(rule.Rules)))
			rules = append(rules, rule)

		case css.QualifiedRuleGrammar:
			// selector followed by comma
			selectors = append(selectors, tokensToString(st.parser.Values()))

		case css.BeginRulesetGrammar:
			selectors = append(selectors, tokensToString(st.parser.Values()))
			rule := &Rule{Type: TypeRule, Selectors: cleanSelectors(selectors)}
			rule.Declarations = st.declarations()
			rules = append(rules, rule)
			selectors = nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			// declarations directly inside at-rule block (@font-face, @page)
			decls = append(decls, declaration(data, st.parser.Values()))
		}
	}
	return decls, rules
}

// declarations parses ruleset body until EndRulesetGrammar.
func (st *parseState) declarations() []*Declaration {
	decls := make([]*Declaration, 0)

	for !st.done {
		gt, _, data := st.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if st.fail() {
				return decls
			}

		case css.EndRulesetGrammar:
			return decls

		case css.CommentGrammar:
			decls = append(decls, &Declaration{Type: TypeComment, Comment: commentText(data)})

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls = append(decls, declaration(data, st.parser.Values()))
		}
	}
	return decls
}

// atRule creates node for at-rule with block, content is parsed by caller.
func (st *parseState) atRule(keyword string, values []css.Token) *Rule {
	name := strings.TrimPrefix(keyword, "@")
	prelude := st.prelude(keyword, values)

	rule := &Rule{Type: atRuleType(name)}
	switch rule.Type {
	case TypeMedia:
		rule.Media = prelude
	case TypeSupports:
		rule.Supports = prelude
	case TypeImport, TypeCharset, TypeNamespace:
		// these never have blocks, keep whatever it is as generic at-rule
		rule.Type = TypeAtRule
		fallthrough
	default:
		rule.Name, rule.Prelude = name, prelude
	}
	return rule
}

// statement creates node for at-rule without block (@import, @charset...).
func (st *parseState) statement(keyword string, values []css.Token) *Rule {
	name := strings.TrimPrefix(keyword, "@")
	prelude := st.prelude(keyword, values)

	rule := &Rule{Type: atRuleType(name)}
	switch rule.Type {
	case TypeImport:
		rule.Import = prelude
	case TypeCharset:
		rule.Charset = prelude
	case TypeNamespace:
		rule.Namespace = prelude
	default:
		rule.Type = TypeAtRule
		rule.Name, rule.Prelude, rule.Statement = name, prelude, true
	}
	st.log.Debug("Parsed @-rule", zap.String("rule", name), zap.String("prelude", prelude))
	return rule
}

func declaration(property []byte, values []css.Token) *Declaration {
	return &Declaration{
		Type:     TypeDeclaration,
		Property: strings.TrimSpace(string(property)),
		Value:    tokensToString(values),
	}
}

// tokensToString joins token data collapsing whitespace runs into single space.
func tokensToString(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// cleanSelectors splits selector groups on top level commas, trims selectors
// and drops empty ones.
func cleanSelectors(in []string) []string {
	out := make([]string, 0, len(in))
	for _, group := range in {
		depth, start := 0, 0
		for i := 0; i <= len(group); i++ {
			if i < len(group) {
				switch group[i] {
				case '(', '[':
					depth++
					continue
				case ')', ']':
					depth--
					continue
				case ',':
					if depth > 0 {
						continue
					}
				default:
					continue
				}
			}
			if s := strings.TrimSpace(group[start:i]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	return out
}

func commentText(data []byte) string {
	s := string(data)
	s = strings.TrimPrefix(s, "/*")
	return strings.TrimSuffix(s, "*/")
}
