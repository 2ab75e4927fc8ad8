package cli

import (
	"testing"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacetValue(t *testing.T) {
	f := newFacetValue(domain.AllStatuses)
	assert.Equal(t, "all", f.String())
	assert.Equal(t, "all|pending|progress|completed", f.Type())

	require.NoError(t, f.Set(" Progress "))
	assert.Equal(t, "progress", f.String())

	assert.Error(t, f.Set("archived"))
	assert.Equal(t, "progress", f.String(), "rejected values leave the flag unchanged")
}

func TestParseID(t *testing.T) {
	id, err := parseID("#12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"", "0", "-3", "x1"} {
		_, err := parseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestStatusOptions_PreselectCurrent(t *testing.T) {
	opts := statusOptions(domain.StatusProgress)
	require.Len(t, opts, 3)
	assert.Equal(t, "Pendiente", opts[0].Key)
	assert.Equal(t, "Completada", opts[2].Key)
	assert.Equal(t, domain.StatusCompleted, opts[2].Value)
}

func TestParseStatusFor(t *testing.T) {
	s, err := parseStatusFor(domain.KindTask, " Progress ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProgress, s)

	_, err = parseStatusFor(domain.KindCleaningJob, "progress")
	assert.EqualError(t, err, `invalid status "progress" (want one of pending, completed)`)

	_, err = parseStatusFor(domain.KindIncident, "done")
	assert.Error(t, err)
}
