package formatter

import "github.com/charmbracelet/lipgloss"

// FormatNotice renders a notice title and message as one or two lines,
// colored by variant ("success", "info", "destructive" or anything else).
func FormatNotice(variant, title, message string) string {
	var style lipgloss.Style
	icon := "•"
	switch variant {
	case "success":
		style, icon = StyleGreen, "✔"
	case "info":
		style, icon = StyleBlue, "ℹ"
	case "destructive":
		style, icon = StyleRed, "✖"
	default:
		style = StyleFg
	}

	out := style.Render(icon) + " " + style.Bold(true).Render(title)
	if message != "" {
		out += "\n  " + Dim(message)
	}
	return out
}
