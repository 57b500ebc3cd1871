package tui

import (
	"runtime"
	"strings"
)

// OSType identifies the host platform for shortcut resolution.
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS maps runtime.GOOS to an OSType.
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	}
	return OSUnknown
}

// ShortcutKey is one key binding, optionally overridden per platform.
// Default applies wherever no override is set.
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string
}

// Get resolves the binding for the current platform.
func (s ShortcutKey) Get() string {
	var override string
	switch GetOS() {
	case OSMac:
		override = s.Mac
	case OSLinux:
		override = s.Linux
	case OSWindows:
		override = s.Windows
	}
	if override != "" {
		return override
	}
	return s.Default
}

// GetWithWarning resolves the binding along with a caveat for chords
// the platform's terminals tend to swallow.
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	shortcut = s.Get()
	if GetOS() != OSLinux {
		return shortcut, ""
	}

	switch shortcut {
	case "ctrl+s", "ctrl+q":
		// XON/XOFF flow control eats these by default
		warning = "(may need: stty -ixon)"
	case "ctrl+z":
		warning = "(caution: suspends process)"
	}
	return shortcut, warning
}

// Shortcuts holds every key binding. They are intercepted before the
// editing widget sees the key, so a binding here shadows the widget's
// own use of that chord.
var Shortcuts = struct {
	// Window operations
	NewWindow   ShortcutKey
	OpenFile    ShortcutKey
	CloseWindow ShortcutKey
	NextWindow  ShortcutKey

	// Document operations
	Save    ShortcutKey
	SaveAs  ShortcutKey
	Preview ShortcutKey
	Copy    ShortcutKey
	Paste   ShortcutKey

	// System
	Quit      ShortcutKey
	ForceQuit ShortcutKey
	Cancel    ShortcutKey
	Confirm   ShortcutKey
}{
	NewWindow:   ShortcutKey{Default: "ctrl+n"},
	OpenFile:    ShortcutKey{Default: "ctrl+o"},
	CloseWindow: ShortcutKey{Default: "ctrl+w"},
	NextWindow:  ShortcutKey{Default: "ctrl+j"},

	Save:    ShortcutKey{Default: "ctrl+s"},
	SaveAs:  ShortcutKey{Default: "ctrl+a"},
	Preview: ShortcutKey{Default: "ctrl+p"},
	Copy:    ShortcutKey{Default: "ctrl+y"},
	Paste:   ShortcutKey{Default: "ctrl+b"},

	Quit:      ShortcutKey{Default: "ctrl+q"},
	ForceQuit: ShortcutKey{Default: "ctrl+c"},
	Cancel:    ShortcutKey{Default: "esc"},
	Confirm:   ShortcutKey{Default: "enter"},
}

// FormatShortcutForHelp compresses a binding for hint lines: ctrl+
// becomes ^, modifiers get their conventional glyphs.
func FormatShortcutForHelp(key ShortcutKey) string {
	shortcut := key.Get()

	altGlyph := "⌥"
	if os := GetOS(); os == OSLinux || os == OSWindows {
		altGlyph = "M-"
	}
	shortcut = strings.ReplaceAll(shortcut, "alt+", altGlyph)
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}

// ShouldShowTerminalSetupWarning reports whether the platform needs a
// terminal setup hint at startup.
func ShouldShowTerminalSetupWarning() bool {
	return GetOS() == OSLinux
}

// GetTerminalSetupMessage returns the platform's terminal setup hint.
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S and Ctrl+Q in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	}
	return ""
}
