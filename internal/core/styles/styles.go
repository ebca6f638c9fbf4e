// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color

	ColorBlue   color.Color
	ColorOrange color.Color
	ColorPurple color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Brief document styles.
	DocTitleStyle      lipgloss.Style
	DocHeadingStyle    lipgloss.Style
	DocEmphasisStyle   lipgloss.Style
	DocStrongStyle     lipgloss.Style
	DocCodeStyle       lipgloss.Style
	DocLinkStyle       lipgloss.Style
	DocQuoteBarStyle   lipgloss.Style
	DocRuleStyle       lipgloss.Style
	DocListMarkerStyle lipgloss.Style

	// Citation tag styles.
	TagCaseNameStyle   lipgloss.Style
	TagBadgeStyle      lipgloss.Style
	TagSeparatorStyle  lipgloss.Style
	TagDecorationStyle lipgloss.Style
	TagUnverifiedStyle lipgloss.Style
	TagIconStyle       lipgloss.Style

	// Detail pane styles.
	DetailBorderStyle      lipgloss.Style
	DetailTitleStyle       lipgloss.Style
	DetailLabelStyle       lipgloss.Style
	DetailPlaceholderStyle lipgloss.Style
	DetailCloseStyle       lipgloss.Style

	// Page chrome.
	StatusBarStyle     lipgloss.Style
	SearchPromptStyle  lipgloss.Style
	SearchNoMatchStyle lipgloss.Style
	ScrollIndicator    lipgloss.Style

	// Help dialog.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	ColorBlue = p.Blue
	ColorOrange = p.Orange
	ColorPurple = p.Purple

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	DocTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	DocHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DocEmphasisStyle = lipgloss.NewStyle().Italic(true)
	DocStrongStyle = lipgloss.NewStyle().Bold(true)
	DocCodeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Background(ColorSurface)
	DocLinkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	DocQuoteBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	DocRuleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	DocListMarkerStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	TagCaseNameStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	TagBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Bold(true)
	TagSeparatorStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TagDecorationStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TagUnverifiedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	TagIconStyle = lipgloss.NewStyle().Bold(true)

	DetailBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	DetailTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DetailLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true)
	DetailPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	DetailCloseStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Padding(0, 1)
	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SearchNoMatchStyle = lipgloss.NewStyle().Foreground(ColorError)
	ScrollIndicator = lipgloss.NewStyle().Foreground(ColorMuted)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginTop(1)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// TagColor returns the palette colour for a citation colour class. Unknown
// classes get the primary colour.
func TagColor(class string) color.Color {
	switch class {
	case "orange":
		return ColorOrange
	case "purple":
		return ColorPurple
	case "blue":
		return ColorBlue
	default:
		return ColorPrimary
	}
}

// SeverityColor maps a verification severity to a status colour.
func SeverityColor(severity string) color.Color {
	switch severity {
	case "critical":
		return ColorError
	case "warning":
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
