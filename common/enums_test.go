package common

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q) error = %v", name, err)
		}
		if a.String() != name {
			t.Errorf("ParseAction(%q).String() = %q", name, a.String())
		}
	}
	if _, err := ParseAction("drop"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ParseAction(drop) error = %v, want ErrInvalidAction", err)
	}
}

func TestActionZeroValueIsSkip(t *testing.T) {
	var a Action
	if a != ActionSkip {
		t.Errorf("zero Action = %v, want skip", a)
	}
}

func TestPresetText(t *testing.T) {
	var p Preset
	if err := p.UnmarshalText([]byte("min-width")); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if p != PresetMinWidth {
		t.Errorf("got %v, want PresetMinWidth", p)
	}
	data, err := p.MarshalText()
	if err != nil || string(data) != "min-width" {
		t.Errorf("MarshalText() = %q, %v", data, err)
	}
}

func TestOutputFmtExt(t *testing.T) {
	if OutputFmtCss.Ext() != ".css" || OutputFmtJson.Ext() != ".json" {
		t.Errorf("unexpected extensions %q %q", OutputFmtCss.Ext(), OutputFmtJson.Ext())
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown format")
		}
	}()
	_ = OutputFmt(42).Ext()
}
