package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/domain"
)

var (
	// ErrPersist wraps a failed write of a collection. The in-memory
	// collection has already been updated when it is returned.
	ErrPersist = errors.New("persisting collection")

	// ErrNotInitialized is returned by mutations issued before Initialize.
	ErrNotInitialized = errors.New("record store not initialized")

	// ErrDisposed is returned by any operation after Dispose.
	ErrDisposed = errors.New("record store disposed")

	// ErrNotAvailable is returned for intents the product does not offer yet.
	ErrNotAvailable = errors.New("not yet available")
)

// Snapshot is a copy of the three collections. Callers may modify it freely.
type Snapshot struct {
	Incidents    []domain.Incident
	Tasks        []domain.Task
	CleaningJobs []domain.CleaningJob
}

// RecordStore owns the canonical collections and is their only mutation
// path. Every mutation replaces the whole collection and persists it before
// returning. Ids that match no record are a silent no-op.
type RecordStore interface {
	// Initialize loads each collection, seeding defaults for absent or
	// undecodable keys. The first successful result is memoized.
	Initialize(ctx context.Context) (Snapshot, error)
	Snapshot() Snapshot
	Incidents() []domain.Incident
	Tasks() []domain.Task
	CleaningJobs() []domain.CleaningJob

	SetTaskStatus(ctx context.Context, id int, status domain.Status) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id int) ([]domain.Task, error)
	ReopenTask(ctx context.Context, id int) ([]domain.Task, error)
	SetIncidentStatus(ctx context.Context, id int, status domain.Status) ([]domain.Incident, error)
	SetCleaningJobStatus(ctx context.Context, id int, status domain.Status) ([]domain.CleaningJob, error)

	// Unavailable records a placeholder intent (create, edit, history...).
	// It notifies the user and never mutates anything.
	Unavailable(ctx context.Context, intent string) error

	Dispose(ctx context.Context) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}
