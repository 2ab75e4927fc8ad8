package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/domain"
)

const dashboardProgressWidth = 12

// FormatDashboard renders the summary counters and the recent activity feed.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(Header("Resumen") + "\n")
	stats := []struct {
		label string
		value int
		total int
		style func(...string) string
	}{
		{"Incidencias Abiertas", resp.OpenIncidents, resp.TotalIncidents, StyleRed.Render},
		{"Tareas Pendientes", resp.PendingTasks, resp.TotalTasks, StyleBlue.Render},
		{"Limpiezas Programadas", resp.PendingCleaningJobs, resp.TotalCleaningJobs, StyleGreen.Render},
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			Bold(s.label),
			s.style(fmt.Sprintf("%d", s.value)),
			Dim(fmt.Sprintf("de %d", s.total)),
			RenderProgress(Ratio(s.total-s.value, s.total), dashboardProgressWidth),
		})
	}
	b.WriteString(RenderTable([]string{"", "", "", "RESUELTO"}, rows, ""))

	b.WriteString("\n" + Header("Actividad Reciente") + "\n")
	if len(resp.RecentActivity) == 0 {
		b.WriteString(Dim("No hay actividad reciente.") + "\n")
		return b.String()
	}
	for _, a := range resp.RecentActivity {
		b.WriteString(FormatActivity(a) + "\n")
	}
	return b.String()
}

// FormatActivity renders one feed entry on a single line.
func FormatActivity(a contract.ActivitySummary) string {
	icon := "▲"
	if a.Kind == domain.KindTask {
		icon = "☐"
	}
	return fmt.Sprintf("%s %s  %s  %s",
		StatusColor(a.Status.Category).Render(icon),
		Bold(a.Title),
		Dim(a.Category+" - "+a.Date.String()),
		StatusBadge(a.Status),
	)
}
