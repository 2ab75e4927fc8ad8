package domain

// Incident is a reported fault at a residence.
type Incident struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Residence    string   `json:"residence"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority"`
	AssignedTo   string   `json:"assignedTo,omitempty"`
	ReportedDate Date     `json:"reportedDate"`
	Description  string   `json:"description"`
}

func (i Incident) RecordID() int         { return i.ID }
func (i Incident) CurrentStatus() Status { return i.Status }

// WithStatus returns a copy of i with only the status replaced.
func (i Incident) WithStatus(s Status) Incident {
	i.Status = s
	return i
}

// IsOpen reports whether the incident still needs attention.
func (i Incident) IsOpen() bool {
	return i.Status != StatusCompleted
}
