// Package preset provides ready made decision policies for package filter.
package preset

import (
	"math"
	"strings"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"

	"mqfilter/css"
	"mqfilter/filter"
	"mqfilter/mediaquery"
)

// DefaultWidth is used when no width is specified, bootstrap's @screen-lg.
const DefaultWidth = 1200

// MinWidth styles the page as if the viewport was at least width pixels wide,
// with no width dependent media queries left:
//
//   - rules with max-width below width are removed, they would never apply
//   - rules with min-width are flattened, so they always apply
//   - rules with min-width above width are removed unless allowWider is set,
//     they would not apply at exactly width
//
// Everything else (pixel ratio, orientation, print...) is left as is.
func MinWidth(width int, allowWider bool, opts ...filter.Option) filter.Func {
	return filter.New(MinWidthPredicate(width, allowWider), opts...)
}

// MinWidthPredicate is the decision function used by MinWidth.
func MinWidthPredicate(width int, allowWider bool) filter.Predicate {
	if width == 0 {
		width = DefaultWidth
	}
	return func(_ *css.Rule, props *mediaquery.Props) filter.Decision {
		if v, ok := props.Get("max-width"); ok {
			if maxWidth, ok := LeadingInt(v); ok && maxWidth < width {
				return filter.Remove()
			}
		}
		if v, ok := props.Get("min-width"); ok {
			if minWidth, ok := LeadingInt(v); ok && minWidth > width && !allowWider {
				return filter.Remove()
			}
			return filter.Flatten()
		}
		return filter.Skip()
	}
}

// LeadingInt extracts integer from the beginning of s ignoring leading
// whitespace and anything after digits, so "1000.5px" is 1000. Second value is
// false when s does not start with a number, such values never compare.
// Numbers too big for int saturate to math.MaxInt (math.MinInt when negative).
func LeadingInt(s string) (int, bool) {
	b := []byte(strings.TrimLeft(s, " \t\n\r\f"))
	n, size := parsestrconv.ParseInt(b)
	if size > 0 && int64(int(n)) == n {
		return int(n), true
	}

	neg, digits := false, b
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg, digits = digits[0] == '-', digits[1:]
	}
	if len(digits) == 0 || digits[0] < '0' || digits[0] > '9' {
		return 0, false
	}
	if neg {
		return math.MinInt, true
	}
	return math.MaxInt, true
}
