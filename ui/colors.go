package ui

import (
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// ANSI Color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"

	colorBrightRed    = "\033[91m"
	colorBrightGreen  = "\033[92m"
	colorBrightBlue   = "\033[94m"
	colorBrightPurple = "\033[95m"
	colorBrightCyan   = "\033[96m"
	colorBrightWhite  = "\033[97m"
)

var colorEnabled atomic.Bool

func init() {
	colorEnabled.Store(runtime.GOOS != "windows")
}

// SetColor turns ANSI colouring on or off for all helpers in this package.
func SetColor(on bool) {
	colorEnabled.Store(on && runtime.GOOS != "windows")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Text coloring helpers
func Colorize(text, color string) string {
	if !colorEnabled.Load() {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string    { return Colorize(text, colorBrightRed) }
func BrightGreen(text string) string  { return Colorize(text, colorBrightGreen) }
func BrightBlue(text string) string   { return Colorize(text, colorBrightBlue) }
func BrightPurple(text string) string { return Colorize(text, colorBrightPurple) }
func BrightCyan(text string) string   { return Colorize(text, colorBrightCyan) }
func BrightWhite(text string) string  { return Colorize(text, colorBrightWhite) }

func Bold(text string) string { return Colorize(text, colorBold) }
func Dim(text string) string  { return Colorize(text, colorDim) }

// Shortcuts for common message types
func Success(text string) string { return BrightGreen("✅ " + text) }
func Error(text string) string   { return BrightRed("❌ " + text) }
func Info(text string) string    { return BrightBlue("ℹ️  " + text) }

// Header returns a stylized uppercase title
func Header(title string) string {
	title = strings.ToUpper(title)
	return BrightPurple(Bold(title))
}
