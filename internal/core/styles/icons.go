package styles

// Tag glyphs. They are plain Unicode so they render without a patched font.
var (
	IconCopy    = "⧉"
	IconChevron = "›"
	IconQuote   = "│"
	IconBullet  = "•"
)

// Severity glyphs shown on tags with a verification result.
var (
	IconSeverityCritical = "!"
	IconSeverityWarning  = "~"
	IconSeverityOK       = "✓"
)

// SeverityIcon returns the glyph for a verification severity.
func SeverityIcon(severity string) string {
	switch severity {
	case "critical":
		return IconSeverityCritical
	case "warning":
		return IconSeverityWarning
	default:
		return IconSeverityOK
	}
}
