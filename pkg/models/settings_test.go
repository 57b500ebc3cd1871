package models

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.Editor.ShowLineNumbers {
		t.Error("expected line numbers on by default")
	}
	if s.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", s.Editor.TabWidth)
	}
	if s.UI.DefaultKind != "plain" {
		t.Errorf("DefaultKind = %q, want %q", s.UI.DefaultKind, "plain")
	}
	if s.Window.CascadeCols <= 0 || s.Window.CascadeRows <= 0 {
		t.Errorf("cascade offsets must be positive, got %d/%d",
			s.Window.CascadeCols, s.Window.CascadeRows)
	}
	if s.Window.WidthPercent <= 0 || s.Window.WidthPercent > 100 {
		t.Errorf("WidthPercent out of range: %d", s.Window.WidthPercent)
	}
	if s.Window.HeightPercent <= 0 || s.Window.HeightPercent > 100 {
		t.Errorf("HeightPercent out of range: %d", s.Window.HeightPercent)
	}
}
