package preset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mqfilter/common"
	"mqfilter/css"
	"mqfilter/filter"
	"mqfilter/mediaquery"
)

func mediaRule(cond string, children ...*css.Rule) *css.Rule {
	return &css.Rule{Type: css.TypeMedia, Media: cond, Rules: children}
}

func plainRule(sel string) *css.Rule {
	return &css.Rule{Type: css.TypeRule, Selectors: []string{sel}}
}

func TestMinWidthPredicate(t *testing.T) {
	tests := []struct {
		name       string
		cond       string
		width      int
		allowWider bool
		want       common.Action
	}{
		{"narrower max removed", "(max-width: 500px)", 1200, false, common.ActionRemove},
		{"wider max skipped", "(max-width: 1500px)", 1200, false, common.ActionSkip},
		{"equal max skipped", "(max-width: 1200px)", 1200, false, common.ActionSkip},
		{"wider min removed", "(min-width: 1300px)", 1200, false, common.ActionRemove},
		{"wider min allowed", "(min-width: 1300px)", 1200, true, common.ActionFlatten},
		{"narrower min flattened", "(min-width: 800px)", 1200, false, common.ActionFlatten},
		{"equal min flattened", "(min-width: 1200px)", 1200, false, common.ActionFlatten},
		{"orientation untouched", "(orientation: landscape)", 1200, false, common.ActionSkip},
		{"print untouched", "print", 1200, false, common.ActionSkip},
		{"default width", "(min-width: 1199px)", 0, false, common.ActionFlatten},
		{"default width wider", "(min-width: 1201px)", 0, false, common.ActionRemove},
		{"both bounds narrow max wins", "(min-width: 100px) and (max-width: 500px)", 1200, false, common.ActionRemove},
		{"both bounds in range", "(min-width: 800px) and (max-width: 1500px)", 1200, false, common.ActionFlatten},
		{"both bounds min too wide", "(min-width: 1300px) and (max-width: 1500px)", 1200, false, common.ActionRemove},
		{"fractional value truncated", "(max-width: 1199.9px)", 1200, false, common.ActionRemove},
		{"unparsable max ignored", "(max-width: calc(100px))", 1200, false, common.ActionSkip},
		{"unparsable min flattened", "(min-width: var(--w))", 1200, false, common.ActionFlatten},
		{"em units compare numerically", "(max-width: 40em)", 1200, false, common.ActionRemove},
		{"huge min removed", "(min-width: 99999999999999999999px)", 1200, false, common.ActionRemove},
		{"huge min allowed", "(min-width: 99999999999999999999px)", 1200, true, common.ActionFlatten},
		{"huge max skipped", "(max-width: 99999999999999999999px)", 1200, false, common.ActionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := MinWidthPredicate(tt.width, tt.allowWider)
			rule := mediaRule(tt.cond)
			got := pred(rule, mediaquery.Parse(tt.cond, false))
			assert.Equal(t, tt.want, got.Action())
		})
	}
}

func TestMinWidth(t *testing.T) {
	keep := plainRule(".keep")
	wide, narrow := plainRule(".wide"), plainRule(".narrow")

	sheet := css.NewStylesheet()
	sheet.SetRootRules([]*css.Rule{
		keep,
		mediaRule("(max-width: 500px)", plainRule(".mobile")),
		mediaRule("(min-width: 1300px)", wide),
		mediaRule("(min-width: 800px)", narrow),
		mediaRule("(orientation: landscape)", plainRule(".land")),
	})

	var stats filter.Stats
	MinWidth(1200, false, filter.WithStats(&stats))(sheet)

	rules := sheet.RootRules()
	require.Len(t, rules, 3)
	assert.Same(t, keep, rules[0])
	assert.Same(t, narrow, rules[1])
	assert.Equal(t, "(orientation: landscape)", rules[2].Media)
	assert.Equal(t, filter.Stats{Visited: 4, Skipped: 1, Removed: 2, Flattened: 1}, stats)

	sheet.SetRootRules([]*css.Rule{mediaRule("(min-width: 1300px)", wide)})
	MinWidth(1200, true)(sheet)
	require.Len(t, sheet.RootRules(), 1)
	assert.Same(t, wide, sheet.RootRules()[0])
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1000px", 1000, true},
		{"  42em", 42, true},
		{"-5px", -5, true},
		{"1200", 1200, true},
		{"12.5px", 12, true},
		{"px", 0, false},
		{"", 0, false},
		{".5em", 0, false},
		{"+7px", 7, true},
		{"99999999999999999999px", math.MaxInt, true},
		{"-99999999999999999999px", math.MinInt, true},
		{"-px", 0, false},
	}
	for _, tt := range tests {
		got, ok := LeadingInt(tt.in)
		assert.Equal(t, tt.ok, ok, "LeadingInt(%q)", tt.in)
		assert.Equal(t, tt.want, got, "LeadingInt(%q)", tt.in)
	}
}
