package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is the label shown for a key, with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the label for the current OS
func (s ShortcutKey) Get() string {
	return s.getFor(GetOS())
}

func (s ShortcutKey) getFor(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Shortcuts lists the keys shown in the help line
var Shortcuts = struct {
	// Seed pane
	Generate     ShortcutKey
	Category     ShortcutKey
	Position     ShortcutKey
	// List panes
	Check        ShortcutKey
	Favorite     ShortcutKey
	Copy         ShortcutKey
	Remove       ShortcutKey
	Regenerate   ShortcutKey
	ListCategory ShortcutKey
	ListPosition ShortcutKey
	EditSeed     ShortcutKey
	// System
	SwitchPane ShortcutKey
	Quit       ShortcutKey
	ForceQuit  ShortcutKey
}{
	Generate:     ShortcutKey{Default: "enter"},
	Category:     ShortcutKey{Default: "↑/↓"},
	Position:     ShortcutKey{Default: "ctrl+t"},
	Check:        ShortcutKey{Default: "a"},
	Favorite:     ShortcutKey{Default: "f"},
	Copy:         ShortcutKey{Default: "y"},
	Remove:       ShortcutKey{Default: "d"},
	Regenerate:   ShortcutKey{Default: "g"},
	ListCategory: ShortcutKey{Default: "←/→"},
	ListPosition: ShortcutKey{Default: "p"},
	EditSeed:     ShortcutKey{Default: "/"},
	SwitchPane: ShortcutKey{
		Windows: "tab/backtab", // shift+tab arrives as backtab in older consoles
		Default: "tab/shift+tab",
	},
	Quit:      ShortcutKey{Default: "q"},
	ForceQuit: ShortcutKey{Default: "ctrl+c"},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get())
}

func formatShortcut(shortcut string) string {
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}

// helpEntry renders "key action" for the help line
func helpEntry(key ShortcutKey, action string) string {
	return FormatShortcutForHelp(key) + " " + action
}
