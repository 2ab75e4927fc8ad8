package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Unassigned is shown in place of an empty assignee.
const Unassigned = "No asignado"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDate renders d as YYYY-MM-DD, or a dim "--" when zero.
func FormatDate(d domain.Date) string {
	if d.IsZero() {
		return Dim("--")
	}
	return StyleFg.Render(d.String())
}

// Assignee renders name, falling back to Unassigned.
func Assignee(name string) string {
	if strings.TrimSpace(name) == "" {
		return Dim(Unassigned)
	}
	return name
}

// RecordID renders a record id as "#3".
func RecordID(id int) string {
	return Dim("#") + StyleFg.Render(strconv.Itoa(id))
}
