package testutil

import (
	"github.com/alexanderramin/nexus/internal/domain"
)

// Incident options
type IncidentOption func(*domain.Incident)

func WithIncidentStatus(s domain.Status) IncidentOption {
	return func(i *domain.Incident) {
		i.Status = s
	}
}

func WithResidence(r string) IncidentOption {
	return func(i *domain.Incident) {
		i.Residence = r
	}
}

func WithReportedDate(d string) IncidentOption {
	return func(i *domain.Incident) {
		i.ReportedDate = domain.MustDate(d)
	}
}

func NewTestIncident(id int, title string, opts ...IncidentOption) domain.Incident {
	i := domain.Incident{
		ID:           id,
		Title:        title,
		Residence:    "Residencia Test",
		Status:       domain.StatusPending,
		Priority:     domain.PriorityMedium,
		ReportedDate: domain.MustDate("2025-06-01"),
		Description:  "test incident",
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.Status) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithAssignee(name string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedTo = name
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = domain.MustDate(d)
	}
}

func NewTestTask(id int, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       id,
		Title:    title,
		Type:     domain.TaskMaintenance,
		Priority: domain.PriorityLow,
		DueDate:  domain.MustDate("2025-06-30"),
		Status:   domain.StatusPending,
		Details:  "test task",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// CleaningJob options
type CleaningOption func(*domain.CleaningJob)

func WithCleaningStatus(s domain.Status) CleaningOption {
	return func(c *domain.CleaningJob) {
		c.Status = s
	}
}

func WithCleaningType(ct domain.CleaningType) CleaningOption {
	return func(c *domain.CleaningJob) {
		c.Type = ct
	}
}

func WithResponsible(r string) CleaningOption {
	return func(c *domain.CleaningJob) {
		c.Responsible = r
	}
}

func NewTestCleaningJob(id int, area string, opts ...CleaningOption) domain.CleaningJob {
	c := domain.CleaningJob{
		ID:           id,
		Area:         area,
		Type:         domain.CleaningDaily,
		Responsible:  "Equipo Test",
		LastCleaned:  domain.MustDate("2025-06-01"),
		NextCleanDue: domain.MustDate("2025-06-02"),
		Status:       domain.StatusPending,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
