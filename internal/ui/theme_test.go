package ui

import (
	"testing"
)

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name      string
		theme     string
		wantTheme string
	}{
		{"dark selects dark theme", "dark", "dark"},
		{"light selects light theme", "light", "light"},
		{"none disables colors", "none", "none"},
		{"unknown falls back to dark", "solarized", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.theme)
			if got := GetCurrentTheme().Name; got != tt.wantTheme {
				t.Errorf("GetCurrentTheme().Name = %q, want %q", got, tt.wantTheme)
			}
		})
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme(true) theme = %q, want %q", got, "none")
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("NoColorTheme accessors should return empty strings")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme with NO_COLOR set: theme = %q, want %q", got, "none")
	}
}

func TestColorAccessors_MatchTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want %q", ColorGreen(), DarkTheme.Success)
	}
	if ColorRed() != DarkTheme.Error {
		t.Errorf("ColorRed() = %q, want %q", ColorRed(), DarkTheme.Error)
	}
	if ColorUnderline() != DarkTheme.Underline {
		t.Errorf("ColorUnderline() = %q, want %q", ColorUnderline(), DarkTheme.Underline)
	}
}
