// Package filter applies caller supplied decisions to @media rules of a
// stylesheet.
//
// For every top level rule with non-empty media condition the predicate is
// called with the rule and its parsed condition features, and the returned
// Decision is applied in place:
//
//	Skip()       rule stays as is
//	Remove()     rule is dropped
//	Flatten()    rule is replaced with its children
//	Replace(s)   rule condition becomes s
//
// Rules are visited from the last to the first, so any change made at the
// current position never shifts rules which are not visited yet. Every
// original rule is visited exactly once, children moved up by Flatten are not
// visited again.
package filter

import (
	"slices"

	"go.uber.org/zap"

	"mqfilter/common"
	"mqfilter/css"
	"mqfilter/mediaquery"
)

// Predicate decides what to do with a single @media rule. Props always have
// dash separated keys ("min-width"). Predicate may inspect the rule but should
// not change the enclosing rule list.
type Predicate func(rule *css.Rule, props *mediaquery.Props) Decision

// Func mutates stylesheet in place.
type Func func(sheet *css.Stylesheet)

// Stats counts decisions applied by Func. Not safe for concurrent use.
type Stats struct {
	Visited   int
	Skipped   int
	Removed   int
	Flattened int
	Replaced  int
}

func (s *Stats) count(a common.Action) {
	if s == nil {
		return
	}
	s.Visited++
	switch a {
	case common.ActionRemove:
		s.Removed++
	case common.ActionFlatten:
		s.Flattened++
	case common.ActionReplace:
		s.Replaced++
	default:
		s.Skipped++
	}
}

// Changed returns number of rules actually modified.
func (s *Stats) Changed() int {
	if s == nil {
		return 0
	}
	return s.Removed + s.Flattened + s.Replaced
}

type Option func(*engine)

// WithLogger sets logger for decision tracing.
func WithLogger(log *zap.Logger) Option {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithStats accumulates applied decisions into s.
func WithStats(s *Stats) Option {
	return func(e *engine) {
		e.stats = s
	}
}

// WithNested makes filter descend into children of rules which stay in
// place: @supports and other block at-rules as well as skipped or replaced
// @media rules.
func WithNested(nested bool) Option {
	return func(e *engine) {
		e.nested = nested
	}
}

type engine struct {
	pred   Predicate
	log    *zap.Logger
	stats  *Stats
	nested bool
}

// New returns Func applying pred to every @media rule of a stylesheet. Nil
// pred skips every rule.
func New(pred Predicate, opts ...Option) Func {
	e := &engine{pred: pred, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.Named("filter")

	return func(sheet *css.Stylesheet) {
		if sheet == nil {
			return
		}
		rules := sheet.RootRules()
		if len(rules) == 0 {
			return
		}
		sheet.SetRootRules(e.apply(rules, 0))
	}
}

func (e *engine) apply(rules []*css.Rule, depth int) []*css.Rule {
	for i := len(rules) - 1; i >= 0; i-- {
		rule := rules[i]
		if !rule.IsMedia() {
			e.descend(rule, depth)
			continue
		}

		props := mediaquery.Parse(rule.Media, false)
		d := Skip()
		if e.pred != nil {
			d = e.pred(rule, props)
		}
		e.stats.count(d.Action())

		switch d.Action() {
		case common.ActionRemove:
			e.log.Debug("Media rule removed", zap.String("media", rule.Media), zap.Int("depth", depth))
			rules = slices.Delete(rules, i, i+1)
		case common.ActionFlatten:
			// no children degrades to removal
			e.log.Debug("Media rule flattened", zap.String("media", rule.Media), zap.Int("children", len(rule.Rules)), zap.Int("depth", depth))
			rules = slices.Replace(rules, i, i+1, rule.Rules...)
		case common.ActionReplace:
			media, _ := d.Media()
			e.log.Debug("Media rule condition replaced", zap.String("media", rule.Media), zap.String("replacement", media), zap.Int("depth", depth))
			rule.Media = media
			e.descend(rule, depth)
		default:
			e.descend(rule, depth)
		}
	}
	return rules
}

func (e *engine) descend(rule *css.Rule, depth int) {
	if !e.nested || rule == nil || len(rule.Rules) == 0 {
		return
	}
	rule.Rules = e.apply(rule.Rules, depth+1)
}
