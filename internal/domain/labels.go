package domain

import (
	"unicode"
	"unicode/utf8"
)

// UnknownLabel is shown for any status or type that cannot be resolved.
const UnknownLabel = "Desconocido"

// StatusInfo is the resolved display form of a Status.
type StatusInfo struct {
	Text     string
	Category StatusCategory
}

// PriorityInfo is the resolved display form of a Priority.
type PriorityInfo struct {
	Text     string
	Category PriorityCategory
}

var unknownStatus = StatusInfo{Text: UnknownLabel, Category: StatusCategoryUnknown}

// Per-kind status wording. Incidents and the dashboard use the masculine
// form, tasks the feminine one, cleaning jobs have no in-progress state.
var statusLabels = map[Kind]map[Status]StatusInfo{
	KindIncident: {
		StatusPending:   {Text: "Pendiente", Category: StatusCategoryPending},
		StatusProgress:  {Text: "En Progreso", Category: StatusCategoryActive},
		StatusCompleted: {Text: "Completado", Category: StatusCategoryDone},
	},
	KindTask: {
		StatusPending:   {Text: "Pendiente", Category: StatusCategoryPending},
		StatusProgress:  {Text: "En Progreso", Category: StatusCategoryActive},
		StatusCompleted: {Text: "Completada", Category: StatusCategoryDone},
	},
	KindCleaningJob: {
		StatusPending:   {Text: "Pendiente", Category: StatusCategoryPending},
		StatusCompleted: {Text: "Realizada", Category: StatusCategoryDone},
	},
}

var priorityLabels = map[Priority]PriorityInfo{
	PriorityHigh:   {Text: "Alta", Category: PriorityCategoryHigh},
	PriorityMedium: {Text: "Media", Category: PriorityCategoryMedium},
	PriorityLow:    {Text: "Baja", Category: PriorityCategoryLow},
}

var taskTypeLabels = map[TaskType]string{
	TaskMaintenance: "Mantenimiento",
	TaskRepair:      "Reparación",
	TaskCleaning:    "Limpieza",
	TaskInspection:  "Inspección",
}

var cleaningTypeLabels = map[CleaningType]string{
	CleaningDaily:     "Diaria",
	CleaningDeep:      "A Fondo",
	CleaningScheduled: "Programada",
}

// StatusLabel resolves s with the kind-agnostic wording used by summaries.
func StatusLabel(s Status) StatusInfo {
	return KindStatusLabel(KindIncident, s)
}

// KindStatusLabel resolves s with the wording used for records of kind k.
func KindStatusLabel(k Kind, s Status) StatusInfo {
	if info, ok := statusLabels[k][s]; ok {
		return info
	}
	return unknownStatus
}

// KindStatuses lists the statuses a record of kind k can hold, in
// lifecycle order. Cleaning jobs have no in-progress state.
func KindStatuses(k Kind) []Status {
	out := make([]Status, 0, len(AllStatuses))
	for _, s := range AllStatuses {
		if _, ok := statusLabels[k][s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// PriorityLabel resolves p. Unrecognised priorities read as "Normal".
func PriorityLabel(p Priority) PriorityInfo {
	if info, ok := priorityLabels[p]; ok {
		return info
	}
	return PriorityInfo{Text: "Normal", Category: PriorityCategoryUnknown}
}

// TypeLabel resolves a task or cleaning type given as raw text. It never
// fails: unknown values come back with their first letter upper-cased.
func TypeLabel(raw string) string {
	if text, ok := taskTypeLabels[TaskType(raw)]; ok {
		return text
	}
	if text, ok := cleaningTypeLabels[CleaningType(raw)]; ok {
		return text
	}
	return capitalizeRaw(raw)
}

func capitalizeRaw(raw string) string {
	if raw == "" {
		return UnknownLabel
	}
	r, size := utf8.DecodeRuneInString(raw)
	return string(unicode.ToUpper(r)) + raw[size:]
}
