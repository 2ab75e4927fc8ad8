package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/repository"
	"github.com/alexanderramin/nexus/internal/service"
	"github.com/alexanderramin/nexus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires an App over an in-memory SQLite store. Notices and command
// output share one buffer.
func testApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	store := service.NewRecordStore(repository.NewSQLiteKVRepo(testutil.NewTestDB(t)), NoticePrinter{W: buf})
	return &App{
		Store:             store,
		Dashboard:         service.NewDashboardService(store),
		DashboardDefaults: contract.NewDashboardRequest(),
	}, buf
}

// executeCmd runs a command against app and returns the captured output
// with ANSI codes stripped.
func executeCmd(t *testing.T, app *App, buf *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	buf.Reset()
	root := NewRootCmd(app)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func TestDashboardCmd(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Incidencias Abiertas")
	assert.Contains(t, out, "Revisar sistema de riego jardín")
	assert.Contains(t, out, "Incidencia en Residencia Sol Radiante - 2025-06-18")
}

func TestDashboardCmd_LimitFlags(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "dashboard", "--incidents", "0", "--tasks", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay actividad reciente.")

	_, err = executeCmd(t, app, buf, "dashboard", "--tasks=-1")
	assert.Error(t, err)
}

func TestIncidentsList_SearchAndStatus(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "incidents", "list", "--search", "ROBLE")
	require.NoError(t, err)
	assert.Contains(t, out, "Luz parpadeante pasillo principal")
	assert.NotContains(t, out, "Caldera no enciende")

	out, err = executeCmd(t, app, buf, "incidents", "list", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Caldera no enciende")
	assert.NotContains(t, out, "Fuga de agua")

	out, err = executeCmd(t, app, buf, "incidents", "list", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No se encontraron incidencias")
}

func TestIncidentsList_SearchInDescription(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "incidents", "list", "--search", "caldera central")
	require.NoError(t, err)
	assert.Contains(t, out, "No se encontraron incidencias", "description is not searched by default")

	out, err = executeCmd(t, app, buf, "incidents", "list", "--search", "caldera central", "--in", "description")
	require.NoError(t, err)
	assert.Contains(t, out, "Caldera no enciende")

	_, err = executeCmd(t, app, buf, "incidents", "list", "--in", "nope")
	assert.Error(t, err)
}

func TestListCmd_RejectsUnknownFacet(t *testing.T) {
	app, buf := testApp(t)

	_, err := executeCmd(t, app, buf, "tasks", "list", "--priority", "urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all|high|medium|low")
}

func TestTasksList_PriorityFilter(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "tasks", "list", "--priority", "medium")
	require.NoError(t, err)
	assert.Contains(t, out, "Pintar pared dañada habitación 101")
	assert.NotContains(t, out, "Revisar sistema de riego")

	out, err = executeCmd(t, app, buf, "tasks", "list", "-s", "laura")
	require.NoError(t, err)
	assert.Contains(t, out, "Revisar sistema de riego jardín")
}

func TestCleaningList_TypeFilter(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "cleaning", "list", "--type", "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Recepción y zonas comunes")
	assert.NotContains(t, out, "Gimnasio y vestuarios")
}

func TestTasksComplete_PrintsNotice(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "tasks", "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tarea Actualizada")
	assert.Contains(t, out, "La tarea #1 ha sido marcada como Completada.")

	out, err = executeCmd(t, app, buf, "tasks", "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tarea ya completada")

	out, err = executeCmd(t, app, buf, "tasks", "reopen", "#1")
	require.NoError(t, err)
	assert.Contains(t, out, "marcada como Pendiente")
	assert.Equal(t, domain.StatusPending, app.Store.Tasks()[0].Status)
}

func TestTasksSetStatus_Arguments(t *testing.T) {
	app, buf := testApp(t)

	_, err := executeCmd(t, app, buf, "tasks", "set-status", "2", "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, app.Store.Tasks()[1].Status)

	_, err = executeCmd(t, app, buf, "tasks", "set-status", "2", "done")
	assert.Error(t, err)

	_, err = executeCmd(t, app, buf, "tasks", "set-status", "abc", "pending")
	assert.Error(t, err)

	// Not interactive and no status given.
	_, err = executeCmd(t, app, buf, "tasks", "set-status", "2")
	assert.Error(t, err)
}

func TestTasksSetStatus_MissingIDIsSilent(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "tasks", "set-status", "999999", "completed")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTasksSetStatus_Prompt(t *testing.T) {
	app, buf := testApp(t)
	app.IsInteractive = func() bool { return true }
	var prompted domain.Task
	app.PromptStatus = func(_ context.Context, task domain.Task) (domain.Status, error) {
		prompted = task
		return domain.StatusProgress, nil
	}

	_, err := executeCmd(t, app, buf, "tasks", "set-status", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, prompted.ID)
	assert.Equal(t, domain.StatusProgress, app.Store.Tasks()[0].Status)

	app.PromptStatus = func(context.Context, domain.Task) (domain.Status, error) {
		return "", errors.New("user aborted")
	}
	_, err = executeCmd(t, app, buf, "tasks", "set-status", "1")
	assert.EqualError(t, err, "user aborted")
}

func TestTasksShow(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "tasks", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Jorge Sanz")

	_, err = executeCmd(t, app, buf, "tasks", "show", "42")
	assert.Error(t, err)
}

func TestIncidentAndCleaningSetStatus(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "incidents", "set-status", "2", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Incidencia Actualizada")

	out, err = executeCmd(t, app, buf, "cleaning", "set-status", "1", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "marcada como Realizada")
}

func TestCleaningSetStatus_RejectsProgress(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "cleaning", "set-status", "1", "progress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending, completed")
	assert.NotContains(t, out, "Limpieza Actualizada")

	_, err = app.Store.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, app.Store.CleaningJobs()[0].Status)
}

func TestIncidentsShow(t *testing.T) {
	app, buf := testApp(t)

	out, err := executeCmd(t, app, buf, "incidents", "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Caldera no enciende")
	assert.Contains(t, out, "Luis Rodríguez")
	assert.Contains(t, out, "La caldera central del edificio no funciona.")

	_, err = executeCmd(t, app, buf, "incidents", "show", "42")
	assert.Error(t, err)
}

func TestPlaceholderCommands(t *testing.T) {
	app, buf := testApp(t)

	for _, args := range [][]string{
		{"tasks", "new"},
		{"incidents", "new"},
		{"cleaning", "new"},
		{"cleaning", "history", "1"},
		{"tasks", "edit", "1"},
		{"incidents", "edit", "2"},
		{"assistant"},
		{"contact"},
	} {
		out, err := executeCmd(t, app, buf, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "función no disponible todavía", args)
	}

	_, err := app.Store.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTasks(), app.Store.Tasks())
}

func TestMutation_PersistFailureIsReported(t *testing.T) {
	buf := new(bytes.Buffer)
	failing := testutil.NewFailOnNthExec(testutil.NewTestDB(t), 4, errors.New("disk full"))
	store := service.NewRecordStore(repository.NewSQLiteKVRepo(failing), NoticePrinter{W: buf})
	app := &App{Store: store, Dashboard: service.NewDashboardService(store)}

	_, err := executeCmd(t, app, buf, "tasks", "complete", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPersist)
	assert.Contains(t, err.Error(), "change applied but not saved")
}
