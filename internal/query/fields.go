package query

import "github.com/alexanderramin/nexus/internal/domain"

var (
	IncidentTitle       = Field[domain.Incident]{Name: "title", Value: func(i domain.Incident) string { return i.Title }}
	IncidentResidence   = Field[domain.Incident]{Name: "residence", Value: func(i domain.Incident) string { return i.Residence }}
	IncidentAssignedTo  = Field[domain.Incident]{Name: "assignedTo", Value: func(i domain.Incident) string { return i.AssignedTo }}
	IncidentDescription = Field[domain.Incident]{Name: "description", Value: func(i domain.Incident) string { return i.Description }}

	TaskTitle      = Field[domain.Task]{Name: "title", Value: func(t domain.Task) string { return t.Title }}
	TaskAssignedTo = Field[domain.Task]{Name: "assignedTo", Value: func(t domain.Task) string { return t.AssignedTo }}
	TaskDetails    = Field[domain.Task]{Name: "details", Value: func(t domain.Task) string { return t.Details }}

	CleaningArea        = Field[domain.CleaningJob]{Name: "area", Value: func(c domain.CleaningJob) string { return c.Area }}
	CleaningResponsible = Field[domain.CleaningJob]{Name: "responsible", Value: func(c domain.CleaningJob) string { return c.Responsible }}
)

// All searchable fields per kind.
var (
	IncidentFields = []Field[domain.Incident]{IncidentTitle, IncidentResidence, IncidentAssignedTo, IncidentDescription}
	TaskFields     = []Field[domain.Task]{TaskTitle, TaskAssignedTo, TaskDetails}
	CleaningFields = []Field[domain.CleaningJob]{CleaningArea, CleaningResponsible}
)

// Fields the list screens search by default.
var (
	IncidentSearchFields = []Field[domain.Incident]{IncidentTitle, IncidentResidence}
	TaskSearchFields     = []Field[domain.Task]{TaskTitle, TaskAssignedTo}
	CleaningSearchFields = []Field[domain.CleaningJob]{CleaningArea, CleaningResponsible}
)

// Facet accessors for the list screens' filters.
func IncidentStatus(i domain.Incident) string { return string(i.Status) }
func IncidentPriority(i domain.Incident) string { return string(i.Priority) }
func TaskStatus(t domain.Task) string { return string(t.Status) }
func TaskPriority(t domain.Task) string { return string(t.Priority) }
func TaskType(t domain.Task) string { return string(t.Type) }
func CleaningStatus(c domain.CleaningJob) string { return string(c.Status) }
func CleaningType(c domain.CleaningJob) string { return string(c.Type) }
