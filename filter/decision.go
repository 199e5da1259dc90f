package filter

import (
	"mqfilter/common"
)

// Decision is the fate of a single @media rule. Zero value is Skip, there is
// no way to build a decision other than the four below.
type Decision struct {
	action common.Action
	media  string
}

// Skip leaves the rule untouched.
func Skip() Decision {
	return Decision{action: common.ActionSkip}
}

// Remove drops the rule with all its children.
func Remove() Decision {
	return Decision{action: common.ActionRemove}
}

// Flatten replaces the rule with its children, discarding the condition.
func Flatten() Decision {
	return Decision{action: common.ActionFlatten}
}

// Replace sets new condition text for the rule. New text is used as is.
func Replace(media string) Decision {
	return Decision{action: common.ActionReplace, media: media}
}

// Action returns decision tag.
func (d Decision) Action() common.Action {
	return d.action
}

// Media returns replacement condition, second value is true only for Replace.
func (d Decision) Media() (string, bool) {
	return d.media, d.action == common.ActionReplace
}

func (d Decision) String() string {
	if d.action == common.ActionReplace {
		return d.action.String() + "(" + d.media + ")"
	}
	return d.action.String()
}

// NewDecision builds decision from its configured representation.
func NewDecision(action common.Action, media string) Decision {
	switch action {
	case common.ActionRemove:
		return Remove()
	case common.ActionFlatten:
		return Flatten()
	case common.ActionReplace:
		return Replace(media)
	default:
		return Skip()
	}
}
