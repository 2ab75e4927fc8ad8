package formatter

import (
	"strings"

	"github.com/alexanderramin/nexus/internal/domain"
)

// FormatIncidents renders incidents as a table.
func FormatIncidents(items []domain.Incident) string {
	headers := []string{"ID", "TÍTULO", "RESIDENCIA", "PRIORIDAD", "ESTADO", "REPORTADA", "ASIGNADO A"}
	rows := make([][]string, 0, len(items))
	for _, i := range items {
		rows = append(rows, []string{
			RecordID(i.ID),
			Bold(i.Title),
			i.Residence,
			PriorityBadge(domain.PriorityLabel(i.Priority)),
			StatusBadge(domain.KindStatusLabel(domain.KindIncident, i.Status)),
			FormatDate(i.ReportedDate),
			Assignee(i.AssignedTo),
		})
	}
	return RenderTable(headers, rows, "No se encontraron incidencias")
}

// FormatTasks renders tasks as a table.
func FormatTasks(items []domain.Task) string {
	headers := []string{"ID", "TÍTULO", "TIPO", "PRIORIDAD", "ESTADO", "VENCE", "ASIGNADO A"}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			RecordID(t.ID),
			Bold(t.Title),
			domain.TypeLabel(string(t.Type)),
			PriorityBadge(domain.PriorityLabel(t.Priority)),
			StatusBadge(domain.KindStatusLabel(domain.KindTask, t.Status)),
			FormatDate(t.DueDate),
			Assignee(t.AssignedTo),
		})
	}
	return RenderTable(headers, rows, "No se encontraron tareas")
}

// FormatCleaningJobs renders cleaning jobs as a table.
func FormatCleaningJobs(items []domain.CleaningJob) string {
	headers := []string{"ID", "ÁREA", "TIPO", "RESPONSABLE", "ESTADO", "ÚLTIMA", "PRÓXIMA"}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		kind := StylePurple.Render(domain.TypeLabel(string(c.Type)))
		if c.Type == domain.CleaningDeep {
			kind = StyleRed.Render(domain.TypeLabel(string(c.Type)))
		}
		rows = append(rows, []string{
			RecordID(c.ID),
			Bold(c.Area),
			kind,
			c.Responsible,
			StatusBadge(domain.KindStatusLabel(domain.KindCleaningJob, c.Status)),
			FormatDate(c.LastCleaned),
			FormatDate(c.NextCleanDue),
		})
	}
	return RenderTable(headers, rows, "No se encontraron tareas de limpieza")
}

// FormatIncidentDetail renders a single incident with its description.
func FormatIncidentDetail(i domain.Incident) string {
	var b strings.Builder
	b.WriteString(Bold(i.Title) + "  " + StatusBadge(domain.KindStatusLabel(domain.KindIncident, i.Status)) + "\n")
	b.WriteString(Dim("Prioridad: ") + PriorityBadge(domain.PriorityLabel(i.Priority)) + "\n")
	b.WriteString(Dim("Residencia: ") + i.Residence + "\n")
	b.WriteString(Dim("Reportada: ") + FormatDate(i.ReportedDate) + "\n")
	b.WriteString(Dim("Asignado a: ") + Assignee(i.AssignedTo) + "\n")
	if i.Description != "" {
		b.WriteString("\n" + i.Description + "\n")
	}
	return RenderBox("Incidencia", b.String())
}

// FormatTaskDetail renders a single task with its details text.
func FormatTaskDetail(t domain.Task) string {
	var b strings.Builder
	b.WriteString(Bold(t.Title) + "  " + StatusBadge(domain.KindStatusLabel(domain.KindTask, t.Status)) + "\n")
	b.WriteString(Dim("Prioridad: ") + PriorityBadge(domain.PriorityLabel(t.Priority)) + "\n")
	b.WriteString(Dim("Tipo: ") + domain.TypeLabel(string(t.Type)) + "\n")
	b.WriteString(Dim("Vence: ") + FormatDate(t.DueDate) + "\n")
	b.WriteString(Dim("Asignado a: ") + Assignee(t.AssignedTo) + "\n")
	if t.Details != "" {
		b.WriteString("\n" + t.Details + "\n")
	}
	return RenderBox("Tarea", b.String())
}
