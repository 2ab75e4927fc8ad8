package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/query"
)

type dashboardService struct {
	store    RecordStore
	observer UseCaseObserver
}

func NewDashboardService(store RecordStore, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "get_dashboard", startedAt, &err, fields)

	// A failed seed write still leaves usable collections.
	snap, err := s.store.Initialize(ctx)
	if err != nil {
		if !errors.Is(err, ErrPersist) {
			return nil, err
		}
		fields["persist_error"] = err.Error()
		err = nil
	}

	out := query.Dashboard(snap.Incidents, snap.Tasks, snap.CleaningJobs, req)
	fields["open_incidents"] = out.OpenIncidents
	fields["recent_activity"] = len(out.RecentActivity)
	return &out, nil
}
