package formatter

import (
	"testing"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatIncidents(t *testing.T) {
	out := stripANSI(FormatIncidents(domain.DefaultIncidents()))
	assert.Contains(t, out, "Fuga de agua en baño planta 2")
	assert.Contains(t, out, "Residencia Sol Radiante")
	assert.Contains(t, out, "Alta")
	assert.Contains(t, out, "◐ En Progreso")
	assert.Contains(t, out, "✔ Completado")
	assert.Contains(t, out, "2025-06-15")
}

func TestFormatIncidents_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatIncidents(nil)), "No se encontraron incidencias")
}

func TestFormatTasks_FallbackLabels(t *testing.T) {
	tasks := []domain.Task{{
		ID:       9,
		Title:    "Revisar ascensor",
		Type:     domain.TaskType("elevator"),
		Priority: domain.Priority("urgent"),
		Status:   domain.StatusCompleted,
	}}
	out := stripANSI(FormatTasks(tasks))
	assert.Contains(t, out, "#9")
	assert.Contains(t, out, "Elevator")
	assert.Contains(t, out, "Normal")
	assert.Contains(t, out, "✔ Completada")
	assert.Contains(t, out, Unassigned)
	assert.Contains(t, out, "--")
}

func TestFormatCleaningJobs(t *testing.T) {
	out := stripANSI(FormatCleaningJobs(domain.DefaultCleaningJobs()))
	assert.Contains(t, out, "Recepción y zonas comunes")
	assert.Contains(t, out, "Diaria")
	assert.Contains(t, out, "Equipo Limpieza A")
	assert.Contains(t, out, "Pendiente")
	assert.Contains(t, stripANSI(FormatCleaningJobs(nil)), "No se encontraron tareas de limpieza")
}

func TestFormatIncidentDetail(t *testing.T) {
	out := stripANSI(FormatIncidentDetail(domain.DefaultIncidents()[1]))
	assert.Contains(t, out, "INCIDENCIA")
	assert.Contains(t, out, "Luz parpadeante pasillo principal")
	assert.Contains(t, out, "◐ En Progreso")
	assert.Contains(t, out, "Edificio El Roble")
	assert.Contains(t, out, "Ana Gómez")
	assert.Contains(t, out, "La luz del pasillo principal parpadea intermitentemente.")

	noAssignee := domain.DefaultIncidents()[0]
	noAssignee.AssignedTo = ""
	assert.Contains(t, stripANSI(FormatIncidentDetail(noAssignee)), Unassigned)
}

func TestFormatTaskDetail(t *testing.T) {
	out := stripANSI(FormatTaskDetail(domain.DefaultTasks()[0]))
	assert.Contains(t, out, "TAREA")
	assert.Contains(t, out, "Revisar sistema de riego jardín")
	assert.Contains(t, out, "Laura Martín")
	assert.Contains(t, out, "Inspección programada del sistema de riego automático.")
}
