package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdslide/mdslide/internal/core/domain"
)

// Theme selects how the palette is resolved against the terminal background
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ANSI palette indexes, so the user's terminal scheme decides the exact shades
var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	ColorDefault = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
)

var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	StyleTitle    lipgloss.Style
	StyleBold     lipgloss.Style
	StyleSelected lipgloss.Style // Cursor row in explore

	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style
)

var (
	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"

	IconFolder   = "📁"
	IconDocument = "📝"
	IconImage    = "🖼"
)

func init() {
	buildStyles()
}

// ParseTheme accepts "auto", "dark" or "light"; empty means auto
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case "":
		return ThemeAuto, nil
	case ThemeAuto, ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (valid: auto, dark, light)", s)
}

// SetTheme forces the background detection and rebuilds every style.
// Auto leaves detection to lipgloss.
func SetTheme(theme Theme) {
	switch theme {
	case ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
	buildStyles()
}

func buildStyles() {
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Reverse(true)

	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Align(lipgloss.Left)
	StyleTableRow = lipgloss.NewStyle().Foreground(ColorDefault)
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(ColorDefault).Faint(true)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)
}

// status prefixes msg with icon and colours the whole line
func status(style lipgloss.Style, icon, msg string) string {
	return style.Render(icon + " " + msg)
}

// FormatSuccess renders "✔ msg"
func FormatSuccess(msg string) string { return status(StyleSuccess, IconSuccess, msg) }

// FormatError renders "✘ msg"
func FormatError(msg string) string { return status(StyleError, IconError, msg) }

func FormatInfo(msg string) string    { return status(StyleInfo, IconInfo, msg) }
func FormatWarning(msg string) string { return status(StyleWarning, IconWarning, msg) }

// FormatErr renders a command failure. Workspace errors already read
// "op path: kind[: cause]", so only the icon is added.
func FormatErr(err error) string {
	if err == nil {
		return ""
	}
	return FormatError(err.Error())
}

func FormatTitle(title string) string { return StyleTitle.Render(title) }
func FormatMuted(text string) string  { return StyleMuted.Render(text) }
func FormatBold(text string) string   { return StyleBold.Render(text) }

// EntryIcon picks the tree icon: folders, images, and everything else as a document
func EntryIcon(e domain.Entry) string {
	switch {
	case e.IsDir:
		return IconFolder
	case e.IsImage():
		return IconImage
	default:
		return IconDocument
	}
}
