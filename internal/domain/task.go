package domain

// Task is a planned piece of maintenance work.
type Task struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Type       TaskType `json:"type"`
	Priority   Priority `json:"priority"`
	AssignedTo string   `json:"assignedTo,omitempty"`
	DueDate    Date     `json:"dueDate"`
	Status     Status   `json:"status"`
	Details    string   `json:"details"`
}

func (t Task) RecordID() int         { return t.ID }
func (t Task) CurrentStatus() Status { return t.Status }

// WithStatus returns a copy of t with only the status replaced. Any
// transition is accepted, including reopening a completed task.
func (t Task) WithStatus(s Status) Task {
	t.Status = s
	return t
}

// IsTerminal reports whether the task is completed. Completed tasks can
// still be reopened.
func (t Task) IsTerminal() bool {
	return t.Status == StatusCompleted
}
