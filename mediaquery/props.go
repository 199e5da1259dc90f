// Package mediaquery extracts "(key: value)" features from media query
// conditions.
//
// Only one level of parentheses is understood. Logical operators, nested
// groups and comma separated query lists are not interpreted, so complex
// conditions may produce unexpected results:
//
//	Parse("(min-width: 1000px) and (max-width: 2000px)", false)
//	// {min-width: 1000px, max-width: 2000px}
//	Parse("(min-width: 1000px) and (max-width: 2000px)", true)
//	// {minWidth: 1000px, maxWidth: 2000px}
package mediaquery

import (
	"bytes"
	"encoding/json"
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/elliotchance/orderedmap/v3"
)

var groupPattern = regexp.MustCompile(`\((.+?)\)`)

// Props is ordered mapping of feature names to values. Keys keep position of
// their first insertion. Nil *Props is an empty map.
type Props struct {
	m *orderedmap.OrderedMap[string, string]
}

// Parse converts media query condition into Props, never fails.
func Parse(cond string, camelCase bool) *Props {
	props := &Props{m: orderedmap.NewOrderedMap[string, string]()}

	for _, group := range groupPattern.FindAllStringSubmatch(cond, -1) {
		for clause := range strings.SplitSeq(group[1], ";") {
			key, val, found := strings.Cut(clause, ":")
			if !found {
				continue
			}
			key, val = strings.TrimSpace(key), strings.TrimSpace(val)
			if key == "" || val == "" {
				continue
			}
			if camelCase {
				key = CamelCase(key)
			}
			props.m.Set(key, val)
		}
	}
	return props
}

// CamelCase converts dash separated name into camel case: every "-" followed
// by a letter is replaced with upper cased letter, "min-width" becomes
// "minWidth".
func CamelCase(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i+1 < len(s) {
			r, size := utf8.DecodeRuneInString(s[i+1:])
			if unicode.IsLetter(r) {
				sb.WriteRune(unicode.ToUpper(r))
				i += size
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func (p *Props) Get(key string) (string, bool) {
	if p == nil || p.m == nil {
		return "", false
	}
	return p.m.Get(key)
}

func (p *Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Props) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// All iterates over features in insertion order.
func (p *Props) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil || p.m == nil {
			return
		}
		for k, v := range p.m.AllFromFront() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns feature names in insertion order.
func (p *Props) Keys() []string {
	keys := make([]string, 0, p.Len())
	for k := range p.All() {
		keys = append(keys, k)
	}
	return keys
}

// Map returns unordered copy of features.
func (p *Props) Map() map[string]string {
	m := make(map[string]string, p.Len())
	for k, v := range p.All() {
		m[k] = v
	}
	return m
}

// String renders features as "{k: v, k: v}".
func (p *Props) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range p.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON renders features as JSON object preserving key order.
func (p *Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range p.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
