package contract

import "github.com/alexanderramin/nexus/internal/domain"

// DashboardRequest controls how the dashboard read model is built.
type DashboardRequest struct {
	RecentIncidents int
	RecentTasks     int
}

// NewDashboardRequest returns the default recent-activity window:
// the first two incidents and the first task.
func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{
		RecentIncidents: 2,
		RecentTasks:     1,
	}
}

// ActivitySummary is the uniform shape incidents and tasks take in the
// recent-activity feed.
type ActivitySummary struct {
	Kind     domain.Kind
	RecordID int
	Title    string
	// Category reads like "Incidencia en <residence>" or "Tarea: <type>".
	Category string
	Status   domain.StatusInfo
	Date     domain.Date
}

// DashboardResponse is everything the dashboard screen renders.
type DashboardResponse struct {
	OpenIncidents       int
	PendingTasks        int
	PendingCleaningJobs int
	TotalIncidents      int
	TotalTasks          int
	TotalCleaningJobs   int
	RecentActivity      []ActivitySummary
}
