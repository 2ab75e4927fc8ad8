package domain

// Kind identifies one of the record collections.
type Kind string

const (
	KindIncident    Kind = "incident"
	KindTask        Kind = "task"
	KindCleaningJob Kind = "cleaning_job"
)

// StorageKey returns the key the collection is persisted under.
func (k Kind) StorageKey() string {
	switch k {
	case KindIncident:
		return "incidents"
	case KindTask:
		return "tasks"
	case KindCleaningJob:
		return "cleaningJobs"
	default:
		return string(k)
	}
}

// Status is the lifecycle state shared by every record kind. Stored values
// outside the known set are kept verbatim and resolve to the unknown label.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProgress  Status = "progress"
	StatusCompleted Status = "completed"
)

// Known reports whether s is one of the enumerated statuses.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus returns the status for raw and whether it is a known variant.
// Unknown input is returned unchanged so it can still be stored and shown.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Known()
}

// AllStatuses lists the enumerated statuses in lifecycle order.
var AllStatuses = []Status{StatusPending, StatusProgress, StatusCompleted}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Known() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// AllPriorities lists the enumerated priorities from most to least urgent.
var AllPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// TaskType is open-ended: the listed values have dedicated labels, anything
// else falls back to its capitalized raw value.
type TaskType string

const (
	TaskMaintenance TaskType = "maintenance"
	TaskRepair      TaskType = "repair"
	TaskCleaning    TaskType = "cleaning"
	TaskInspection  TaskType = "inspection"
)

var AllTaskTypes = []TaskType{TaskMaintenance, TaskRepair, TaskCleaning, TaskInspection}

func (t TaskType) Known() bool {
	_, ok := taskTypeLabels[t]
	return ok
}

// Label returns the display text for t.
func (t TaskType) Label() string {
	if text, ok := taskTypeLabels[t]; ok {
		return text
	}
	return capitalizeRaw(string(t))
}

// CleaningType is open-ended like TaskType.
type CleaningType string

const (
	CleaningDaily     CleaningType = "daily"
	CleaningDeep      CleaningType = "deep"
	CleaningScheduled CleaningType = "scheduled"
)

var AllCleaningTypes = []CleaningType{CleaningDaily, CleaningDeep, CleaningScheduled}

func (t CleaningType) Known() bool {
	_, ok := cleaningTypeLabels[t]
	return ok
}

// Label returns the display text for t.
func (t CleaningType) Label() string {
	if text, ok := cleaningTypeLabels[t]; ok {
		return text
	}
	return capitalizeRaw(string(t))
}

// StatusCategory is the presentation-neutral bucket a status falls into.
// Renderers map categories to colours and icons.
type StatusCategory int

const (
	StatusCategoryUnknown StatusCategory = iota
	StatusCategoryPending
	StatusCategoryActive
	StatusCategoryDone
)

func (c StatusCategory) String() string {
	switch c {
	case StatusCategoryPending:
		return "pending"
	case StatusCategoryActive:
		return "active"
	case StatusCategoryDone:
		return "done"
	default:
		return "unknown"
	}
}

type PriorityCategory int

const (
	PriorityCategoryUnknown PriorityCategory = iota
	PriorityCategoryLow
	PriorityCategoryMedium
	PriorityCategoryHigh
)

func (c PriorityCategory) String() string {
	switch c {
	case PriorityCategoryLow:
		return "low"
	case PriorityCategoryMedium:
		return "medium"
	case PriorityCategoryHigh:
		return "high"
	default:
		return "unknown"
	}
}
