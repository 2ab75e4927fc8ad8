package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_WithStatus_TouchesOnlyStatus(t *testing.T) {
	orig := DefaultTasks()[0]
	done := orig.WithStatus(StatusCompleted)

	assert.Equal(t, StatusPending, orig.Status, "receiver is a copy")
	assert.Equal(t, StatusCompleted, done.Status)
	assert.True(t, done.IsTerminal())

	reopened := done.WithStatus(StatusPending)
	assert.Equal(t, orig, reopened)
}

func TestIncident_IsOpen(t *testing.T) {
	assert.True(t, Incident{Status: StatusPending}.IsOpen())
	assert.True(t, Incident{Status: StatusProgress}.IsOpen())
	assert.True(t, Incident{Status: "weird"}.IsOpen())
	assert.False(t, Incident{Status: StatusCompleted}.IsOpen())
}

func TestDefaults_FreshSlices(t *testing.T) {
	a := DefaultIncidents()
	a[0].Title = "changed"
	assert.NotEqual(t, "changed", DefaultIncidents()[0].Title)

	assert.Len(t, DefaultIncidents(), 3)
	assert.Len(t, DefaultTasks(), 2)
	assert.Len(t, DefaultCleaningJobs(), 2)
}
