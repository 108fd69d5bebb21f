package tui

import (
	"runtime"
	"testing"
)

func TestGetOS(t *testing.T) {
	os := GetOS()

	switch runtime.GOOS {
	case "darwin":
		if os != OSMac {
			t.Errorf("Expected OSMac for darwin, got %v", os)
		}
	case "linux":
		if os != OSLinux {
			t.Errorf("Expected OSLinux for linux, got %v", os)
		}
	case "windows":
		if os != OSWindows {
			t.Errorf("Expected OSWindows for windows, got %v", os)
		}
	}

	if osFromGOOS("plan9") != OSUnknown {
		t.Error("unknown GOOS should map to OSUnknown")
	}
}

func TestShortcutKey_GetFor(t *testing.T) {
	key := ShortcutKey{Windows: "backtab", Default: "shift+tab"}

	tests := []struct {
		os   OSType
		want string
	}{
		{OSMac, "shift+tab"},
		{OSLinux, "shift+tab"},
		{OSWindows, "backtab"},
		{OSUnknown, "shift+tab"},
	}

	for _, tt := range tests {
		if got := key.getFor(tt.os); got != tt.want {
			t.Errorf("getFor(%v) = %q, want %q", tt.os, got, tt.want)
		}
	}
}

func TestFormatShortcut(t *testing.T) {
	tests := map[string]string{
		"ctrl+t":        "^t",
		"tab/shift+tab": "tab/⇧tab",
		"a":             "a",
	}
	for in, want := range tests {
		if got := formatShortcut(in); got != want {
			t.Errorf("formatShortcut(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHelpEntry(t *testing.T) {
	if got := helpEntry(Shortcuts.Check, "check"); got != "a check" {
		t.Errorf("helpEntry = %q", got)
	}
}
