package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// nexusHuhTheme returns a huh theme matching the formatter palette.
func nexusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// statusOptions lists the canonical statuses with task wording, the
// current one preselected.
func statusOptions(current domain.Status) []huh.Option[domain.Status] {
	statuses := domain.KindStatuses(domain.KindTask)
	opts := make([]huh.Option[domain.Status], 0, len(statuses))
	for _, s := range statuses {
		label := domain.KindStatusLabel(domain.KindTask, s).Text
		opts = append(opts, huh.NewOption(label, s).Selected(s == current))
	}
	return opts
}

func taskStatusForm(task domain.Task, result *domain.Status) *huh.Form {
	*result = task.Status
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Status]().
				Title(fmt.Sprintf("Estado de la tarea #%d", task.ID)).
				Description(task.Title).
				Options(statusOptions(task.Status)...).
				Value(result),
		),
	).WithTheme(nexusHuhTheme()).WithShowHelp(false)
}

func promptTaskStatus(ctx context.Context, task domain.Task) (domain.Status, error) {
	var status domain.Status
	if err := taskStatusForm(task, &status).RunWithContext(ctx); err != nil {
		return "", err
	}
	return status, nil
}
