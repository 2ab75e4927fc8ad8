package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a status category.
func StatusColor(c domain.StatusCategory) lipgloss.Style {
	switch c {
	case domain.StatusCategoryPending:
		return StyleYellow
	case domain.StatusCategoryActive:
		return StyleBlue
	case domain.StatusCategoryDone:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityColor returns the style for a priority category.
func PriorityColor(c domain.PriorityCategory) lipgloss.Style {
	switch c {
	case domain.PriorityCategoryHigh:
		return StyleRed
	case domain.PriorityCategoryMedium:
		return StyleOrange
	case domain.PriorityCategoryLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusBadge renders a status as a colored pill such as "● Pendiente".
func StatusBadge(info domain.StatusInfo) string {
	icon := "●"
	switch info.Category {
	case domain.StatusCategoryActive:
		icon = "◐"
	case domain.StatusCategoryDone:
		icon = "✔"
	case domain.StatusCategoryUnknown:
		icon = "○"
	}
	return StatusColor(info.Category).Render(icon + " " + info.Text)
}

// PriorityBadge renders a priority in its category color.
func PriorityBadge(info domain.PriorityInfo) string {
	return PriorityColor(info.Category).Render(info.Text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
