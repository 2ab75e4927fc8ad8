package domain

// Record is the behaviour shared by every entity kind. T is the concrete
// entity type so status replacement stays type-safe.
type Record[T any] interface {
	RecordID() int
	CurrentStatus() Status
	WithStatus(Status) T
}

var (
	_ Record[Incident]    = Incident{}
	_ Record[Task]        = Task{}
	_ Record[CleaningJob] = CleaningJob{}
)
