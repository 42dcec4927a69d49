package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("empty frame should not have ActionLeft")
	}

	f.Set(ActionLeft)
	f.Set(ActionRestart)
	if !f.Has(ActionLeft) || !f.Has(ActionRestart) {
		t.Error("frame should have the actions that were set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have ActionRight")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionRestart) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, name := range []string{"red", "yellow", "green", "blue", "black", "white"} {
		c, ok := ParseColor(name)
		if !ok {
			t.Errorf("ParseColor(%q) failed", name)
			continue
		}
		if c.String() != name {
			t.Errorf("ParseColor(%q).String() = %q", name, c.String())
		}
	}

	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorRGBA(t *testing.T) {
	if got := ColorRed.RGBA(); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("ColorRed.RGBA() = %v", got)
	}
	if got := ColorBlack.RGBA(); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("ColorBlack.RGBA() = %v", got)
	}
	if got := Color(200).RGBA(); got != ColorDefault.RGBA() {
		t.Errorf("unknown color should fall back to default, got %v", got)
	}
}
