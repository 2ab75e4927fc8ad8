package domain

// CleaningJob is a recurring cleaning assignment for an area.
type CleaningJob struct {
	ID           int          `json:"id"`
	Area         string       `json:"area"`
	Type         CleaningType `json:"type"`
	Responsible  string       `json:"responsible"`
	LastCleaned  Date         `json:"lastCleaned"`
	NextCleanDue Date         `json:"nextCleanDue"`
	Status       Status       `json:"status"`
}

func (c CleaningJob) RecordID() int         { return c.ID }
func (c CleaningJob) CurrentStatus() Status { return c.Status }

func (c CleaningJob) WithStatus(s Status) CleaningJob {
	c.Status = s
	return c
}
