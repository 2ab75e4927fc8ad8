package query

import (
	"testing"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFilterByFacet_All(t *testing.T) {
	tasks := domain.DefaultTasks()

	assert.Equal(t, tasks, FilterByFacet(tasks, TaskPriority, All))
}

func TestFilterByFacet_EmptyValueIsNotAll(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask(1, "Sin prioridad", testutil.WithPriority("")),
		testutil.NewTestTask(2, "Alta", testutil.WithPriority(domain.PriorityHigh)),
	}

	got := FilterByFacet(tasks, TaskPriority, "")
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterByFacet_ExactMatch(t *testing.T) {
	incidents := domain.DefaultIncidents()

	got := FilterByFacet(incidents, IncidentStatus, string(domain.StatusProgress))
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = FilterByFacet(incidents, IncidentPriority, string(domain.PriorityHigh))
	assert.Len(t, got, 2)

	assert.Empty(t, FilterByFacet(incidents, IncidentStatus, "Pending"), "match is exact, not case-folded")
}

func TestFilterByFacet_ComposesWithSearch(t *testing.T) {
	jobs := []domain.CleaningJob{
		testutil.NewTestCleaningJob(1, "Recepción", testutil.WithCleaningType(domain.CleaningDaily)),
		testutil.NewTestCleaningJob(2, "Gimnasio", testutil.WithCleaningType(domain.CleaningDeep)),
		testutil.NewTestCleaningJob(3, "Recepción trasera", testutil.WithCleaningType(domain.CleaningDeep)),
	}

	got := FilterByFacet(Search(jobs, "recepción", CleaningSearchFields...), CleaningType, string(domain.CleaningDeep))

	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestCountByStatus_SumsToTotal(t *testing.T) {
	incidents := append(domain.DefaultIncidents(),
		testutil.NewTestIncident(4, "A", testutil.WithIncidentStatus(domain.StatusPending)),
		testutil.NewTestIncident(5, "B", testutil.WithIncidentStatus(domain.StatusCompleted)),
		testutil.NewTestIncident(6, "C", testutil.WithIncidentStatus(domain.StatusProgress)),
	)

	sum := 0
	for _, s := range domain.AllStatuses {
		sum += CountByStatus(incidents, s)
	}
	assert.Equal(t, len(incidents), sum)
	assert.Equal(t, 2, CountByStatus(incidents, domain.StatusCompleted))
}

func TestCountByStatus_IgnoresUnknown(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask(1, "a"),
		testutil.NewTestTask(2, "b", testutil.WithTaskStatus("on-hold")),
	}
	assert.Equal(t, 1, CountByStatus(tasks, domain.StatusPending))
	assert.Equal(t, 1, CountByStatus(tasks, "on-hold"))
}
