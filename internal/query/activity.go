package query

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/domain"
)

// RecentActivity merges the first req.RecentIncidents incidents and the
// first req.RecentTasks tasks, in collection order, into one feed sorted by
// date, newest first. Incidents are dated by report date, tasks by due
// date. Entries sharing a date keep merge order: incidents before tasks,
// each in collection order.
func RecentActivity(incidents []domain.Incident, tasks []domain.Task, req contract.DashboardRequest) []contract.ActivitySummary {
	incidents = head(incidents, req.RecentIncidents)
	tasks = head(tasks, req.RecentTasks)

	out := make([]contract.ActivitySummary, 0, len(incidents)+len(tasks))
	for _, i := range incidents {
		out = append(out, contract.ActivitySummary{
			Kind:     domain.KindIncident,
			RecordID: i.ID,
			Title:    i.Title,
			Category: fmt.Sprintf("Incidencia en %s", i.Residence),
			Status:   domain.StatusLabel(i.Status),
			Date:     i.ReportedDate,
		})
	}
	for _, t := range tasks {
		out = append(out, contract.ActivitySummary{
			Kind:     domain.KindTask,
			RecordID: t.ID,
			Title:    t.Title,
			Category: fmt.Sprintf("Tarea: %s", t.Type.Label()),
			Status:   domain.StatusLabel(t.Status),
			Date:     t.DueDate,
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.After(out[b].Date)
	})
	return out
}

// Dashboard computes the summary counters and the activity feed.
func Dashboard(incidents []domain.Incident, tasks []domain.Task, cleaning []domain.CleaningJob, req contract.DashboardRequest) contract.DashboardResponse {
	return contract.DashboardResponse{
		OpenIncidents:       CountWhere(incidents, domain.Incident.IsOpen),
		PendingTasks:        CountByStatus(tasks, domain.StatusPending),
		PendingCleaningJobs: CountByStatus(cleaning, domain.StatusPending),
		TotalIncidents:      len(incidents),
		TotalTasks:          len(tasks),
		TotalCleaningJobs:   len(cleaning),
		RecentActivity:      RecentActivity(incidents, tasks, req),
	}
}

func head[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
