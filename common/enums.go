// Package common keeps enumerations shared by configuration and processing
// code. Run "go tool go-enum --marshal --names -f enums.go" after changing
// ENUM specifications below.
package common

// Action applied to a single @media rule.
// ENUM(skip, remove, flatten, replace)
type Action int

// Specification of requested output type.
// ENUM(css, json)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtJson:
		return ".json"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Specification of expected input type, auto selects by file extension.
// ENUM(auto, css, json)
type InputFmt int

// Built in decision policy used when no configured rule matched.
// ENUM(none, min-width)
type Preset int
