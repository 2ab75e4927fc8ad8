package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDashboardRequest_SetsDefaults(t *testing.T) {
	req := NewDashboardRequest()

	assert.Equal(t, 2, req.RecentIncidents)
	assert.Equal(t, 1, req.RecentTasks)
}

func TestNewListRequest_MatchesEverything(t *testing.T) {
	req := NewListRequest()

	assert.Empty(t, req.Search)
	assert.Equal(t, FacetAll, req.Facet)
}
