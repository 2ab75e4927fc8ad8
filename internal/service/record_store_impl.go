package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/repository"
)

// kindWording is the notice text used when a record of a kind changes.
// message takes the record id and the status label. Incident labels are
// masculine, so that message lets the label stand alone.
var kindWording = map[domain.Kind]struct{ title, message string }{
	domain.KindIncident:    {title: "Incidencia Actualizada", message: "La incidencia #%d ha cambiado de estado: %s."},
	domain.KindTask:        {title: "Tarea Actualizada", message: "La tarea #%d ha sido marcada como %s."},
	domain.KindCleaningJob: {title: "Limpieza Actualizada", message: "La limpieza #%d ha sido marcada como %s."},
}

type recordStore struct {
	incidents *repository.Collection[domain.Incident]
	tasks     *repository.Collection[domain.Task]
	cleaning  *repository.Collection[domain.CleaningJob]
	notifier  Notifier
	observer  UseCaseObserver

	mu       sync.Mutex
	state    *Snapshot
	disposed bool
}

// NewRecordStore creates a RecordStore persisting to kv under the
// per-kind storage keys.
func NewRecordStore(kv repository.KVRepo, notifier Notifier, observers ...UseCaseObserver) RecordStore {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &recordStore{
		incidents: repository.NewCollection[domain.Incident](kv, domain.KindIncident.StorageKey()),
		tasks:     repository.NewCollection[domain.Task](kv, domain.KindTask.StorageKey()),
		cleaning:  repository.NewCollection[domain.CleaningJob](kv, domain.KindCleaningJob.StorageKey()),
		notifier:  notifier,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *recordStore) Initialize(ctx context.Context) (snap Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return Snapshot{}, ErrDisposed
	}
	if s.state != nil {
		return s.state.clone(), nil
	}

	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "initialize", startedAt, &err, fields)

	var persistErrs []error
	incidents, pErr, err := seedCollection(ctx, s.incidents, domain.DefaultIncidents(), fields)
	if err != nil {
		return Snapshot{}, err
	}
	persistErrs = append(persistErrs, pErr)

	tasks, pErr, err := seedCollection(ctx, s.tasks, domain.DefaultTasks(), fields)
	if err != nil {
		return Snapshot{}, err
	}
	persistErrs = append(persistErrs, pErr)

	cleaning, pErr, err := seedCollection(ctx, s.cleaning, domain.DefaultCleaningJobs(), fields)
	if err != nil {
		return Snapshot{}, err
	}
	persistErrs = append(persistErrs, pErr)

	s.state = &Snapshot{Incidents: incidents, Tasks: tasks, CleaningJobs: cleaning}
	fields["incidents"] = len(incidents)
	fields["tasks"] = len(tasks)
	fields["cleaning_jobs"] = len(cleaning)

	for _, pErr := range persistErrs {
		if pErr != nil {
			err = fmt.Errorf("%w: %w", ErrPersist, pErr)
			break
		}
	}
	return s.state.clone(), err
}

// seedCollection returns the loaded or seeded collection. A storage read
// failure comes back as err; a failed seed write comes back as persistErr
// alongside the defaults.
func seedCollection[T any](ctx context.Context, c *repository.Collection[T], defaults []T, fields map[string]any) (items []T, persistErr error, err error) {
	items, res, err := c.SeedIfAbsent(ctx, defaults)
	if items == nil && err != nil {
		return nil, nil, err
	}
	fields[c.Key()+"_seeded"] = res.Seeded
	if res.Recovered != nil {
		fields[c.Key()+"_recovered"] = res.Recovered.Error()
	}
	return items, err, nil
}

func (s *recordStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return Snapshot{}
	}
	return s.state.clone()
}

func (s *recordStore) Incidents() []domain.Incident { return s.Snapshot().Incidents }

func (s *recordStore) Tasks() []domain.Task { return s.Snapshot().Tasks }

func (s *recordStore) CleaningJobs() []domain.CleaningJob { return s.Snapshot().CleaningJobs }

func (s *recordStore) SetTaskStatus(ctx context.Context, id int, status domain.Status) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTaskStatus(ctx, "set_task_status", id, status)
}

func (s *recordStore) ReopenTask(ctx context.Context, id int) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTaskStatus(ctx, "reopen_task", id, domain.StatusPending)
}

// CompleteTask marks a task completed. A task that already is completed is
// left alone and the user is told so.
func (s *recordStore) CompleteTask(ctx context.Context, id int) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(s.state.Tasks, func(t domain.Task) bool { return t.ID == id })
	if idx >= 0 && s.state.Tasks[idx].IsTerminal() {
		task := s.state.Tasks[idx]
		n := newNotice("Tarea ya completada",
			fmt.Sprintf("La tarea %q ya está marcada como completada.", task.Title), NoticeInfo)
		n.Kind, n.RecordID = domain.KindTask, id
		s.notifier.Notify(ctx, n)
		return slices.Clone(s.state.Tasks), nil
	}
	return s.setTaskStatus(ctx, "complete_task", id, domain.StatusCompleted)
}

func (s *recordStore) setTaskStatus(ctx context.Context, useCase string, id int, status domain.Status) ([]domain.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return mutateStatus(ctx, s, useCase, domain.KindTask, s.tasks, &s.state.Tasks, id, status)
}

func (s *recordStore) SetIncidentStatus(ctx context.Context, id int, status domain.Status) ([]domain.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	return mutateStatus(ctx, s, "set_incident_status", domain.KindIncident, s.incidents, &s.state.Incidents, id, status)
}

func (s *recordStore) SetCleaningJobStatus(ctx context.Context, id int, status domain.Status) ([]domain.CleaningJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	return mutateStatus(ctx, s, "set_cleaning_job_status", domain.KindCleaningJob, s.cleaning, &s.state.CleaningJobs, id, status)
}

// mutateStatus replaces the status of record id in *current, persists the
// whole collection and notifies. The in-memory collection stays updated
// even when the write fails. Caller holds s.mu.
func mutateStatus[T domain.Record[T]](
	ctx context.Context,
	s *recordStore,
	useCase string,
	kind domain.Kind,
	coll *repository.Collection[T],
	current *[]T,
	id int,
	status domain.Status,
) (items []T, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"kind":   string(kind),
		"id":     id,
		"status": string(status),
	}
	defer observe(ctx, s.observer, useCase, startedAt, &err, fields)

	idx := slices.IndexFunc(*current, func(item T) bool { return item.RecordID() == id })
	fields["found"] = idx >= 0
	if idx < 0 {
		return slices.Clone(*current), nil
	}

	updated := slices.Clone(*current)
	updated[idx] = updated[idx].WithStatus(status)
	*current = updated

	if err = coll.Save(ctx, updated); err != nil {
		err = fmt.Errorf("%w: %w", ErrPersist, err)
		return slices.Clone(updated), err
	}

	wording := kindWording[kind]
	n := newNotice(wording.title,
		fmt.Sprintf(wording.message, id, domain.KindStatusLabel(kind, status).Text),
		NoticeSuccess)
	n.Kind, n.RecordID = kind, id
	s.notifier.Notify(ctx, n)

	return slices.Clone(updated), nil
}

func (s *recordStore) Unavailable(ctx context.Context, intent string) error {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "unavailable_intent", startedAt, nil, map[string]any{"intent": intent})

	s.notifier.Notify(ctx, newNotice(intent, intent+": función no disponible todavía", NoticeInfo))
	return fmt.Errorf("%s: %w", intent, ErrNotAvailable)
}

// Dispose drops the in-memory state. The key-value store belongs to the
// caller and is not closed. Calling Dispose twice is harmless.
func (s *recordStore) Dispose(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.state = nil
	return nil
}

func (s *recordStore) ready() error {
	if s.disposed {
		return ErrDisposed
	}
	if s.state == nil {
		return ErrNotInitialized
	}
	return nil
}

func (snap *Snapshot) clone() Snapshot {
	return Snapshot{
		Incidents:    slices.Clone(snap.Incidents),
		Tasks:        slices.Clone(snap.Tasks),
		CleaningJobs: slices.Clone(snap.CleaningJobs),
	}
}
