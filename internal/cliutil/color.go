package cliutil

import (
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	headingColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// SetColor enables or disables ANSI colors for every helper in this package.
// Colors are off by default when stdout is not a terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Success renders s as a success message.
func Success(s string) string { return successColor.Sprint(s) }

// Error renders s as an error message.
func Error(s string) string { return errorColor.Sprint(s) }

// Warning renders s as a warning message.
func Warning(s string) string { return warningColor.Sprint(s) }

// Heading renders s as a section heading.
func Heading(s string) string { return headingColor.Sprint(s) }

// Dim renders s as secondary text.
func Dim(s string) string { return dimColor.Sprint(s) }

// PatchLine colors one line of a unified patch by its leading marker.
func PatchLine(line string) string {
	switch {
	case len(line) >= 3 && (line[:3] == "+++" || line[:3] == "---"):
		return headingColor.Sprint(line)
	case len(line) >= 2 && line[:2] == "@@":
		return dimColor.Sprint(line)
	case len(line) > 0 && line[0] == '+':
		return addedColor.Sprint(line)
	case len(line) > 0 && line[0] == '-':
		return removedColor.Sprint(line)
	}
	return line
}
