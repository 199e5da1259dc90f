package preset

import (
	"fmt"
	"regexp"

	"mqfilter/common"
	"mqfilter/config"
	"mqfilter/css"
	"mqfilter/filter"
	"mqfilter/mediaquery"
)

// Match selects media rules by condition text and features.
type Match struct {
	Media    *regexp.Regexp // matched against raw condition, nil matches any
	Feature  string         // feature name which must be present, empty matches any
	Decision filter.Decision
}

func (m Match) matches(rule *css.Rule, props *mediaquery.Props) bool {
	if m.Media != nil && !m.Media.MatchString(rule.Media) {
		return false
	}
	if m.Feature != "" && !props.Has(m.Feature) {
		return false
	}
	return true
}

// Matchers returns predicate where the first matching entry decides. When
// nothing matches fallback is consulted, nil fallback skips the rule.
func Matchers(matches []Match, fallback filter.Predicate) filter.Predicate {
	return func(rule *css.Rule, props *mediaquery.Props) filter.Decision {
		for _, m := range matches {
			if m.matches(rule, props) {
				return m.Decision
			}
		}
		if fallback == nil {
			return filter.Skip()
		}
		return fallback(rule, props)
	}
}

// FromConfig builds predicate from configured rules followed by configured
// preset.
func FromConfig(cfg *config.FilterConfig) (filter.Predicate, error) {
	var fallback filter.Predicate
	switch cfg.Preset {
	case common.PresetNone:
	case common.PresetMinWidth:
		fallback = MinWidthPredicate(cfg.Width, cfg.AllowWider)
	default:
		return nil, fmt.Errorf("unsupported preset %s", cfg.Preset)
	}

	if len(cfg.Rules) == 0 {
		return fallback, nil
	}

	matches := make([]Match, 0, len(cfg.Rules))
	for i, rc := range cfg.Rules {
		m := Match{
			Feature:  rc.Feature,
			Decision: filter.NewDecision(rc.Action, rc.Replace),
		}
		if rc.Media != "" {
			re, err := regexp.Compile(rc.Media)
			if err != nil {
				return nil, fmt.Errorf("rule %d: bad media pattern %q: %w", i+1, rc.Media, err)
			}
			m.Media = re
		}
		matches = append(matches, m)
	}
	return Matchers(matches, fallback), nil
}
