package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{StyleRed.Render("1"), "short"},
			{"22", StyleGreen.Render("much longer")},
		},
		"",
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "──  ───────────", lines[1])
	assert.Equal(t, "1   short", lines[2])
	assert.Equal(t, "22  much longer", lines[3])
}

func TestRenderTable_EmptyMessage(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID"}, nil, "nada"))
	assert.Contains(t, out, "nada")
	assert.Empty(t, RenderTable(nil, nil, "nada"))
}

func TestRenderProgress_Clamps(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"zero", 0, "[░░░░]   0%"},
		{"half", 0.5, "[██░░]  50%"},
		{"full", 1, "[████] 100%"},
		{"over", 1.7, "[████] 100%"},
		{"negative", -0.2, "[░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 4)))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 0.5, Ratio(1, 2))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "● Pendiente", stripANSI(StatusBadge(domain.KindStatusLabel(domain.KindTask, domain.StatusPending))))
	assert.Equal(t, "✔ Completada", stripANSI(StatusBadge(domain.KindStatusLabel(domain.KindTask, domain.StatusCompleted))))
	assert.Equal(t, "○ Desconocido", stripANSI(StatusBadge(domain.StatusLabel("archived"))))
}

func TestAssigneeAndDate(t *testing.T) {
	assert.Equal(t, Unassigned, stripANSI(Assignee("  ")))
	assert.Equal(t, "Ana", Assignee("Ana"))
	assert.Equal(t, "--", stripANSI(FormatDate(domain.Date{})))
	assert.Equal(t, "2025-06-18", stripANSI(FormatDate(domain.MustDate("2025-06-18"))))
	assert.Equal(t, "#7", stripANSI(RecordID(7)))
}

func TestFormatNotice(t *testing.T) {
	out := stripANSI(FormatNotice("success", "Tarea Actualizada", "La tarea #1 ha sido marcada como Completada."))
	assert.Equal(t, "✔ Tarea Actualizada\n  La tarea #1 ha sido marcada como Completada.", out)
	assert.Equal(t, "• Hola", stripANSI(FormatNotice("default", "Hola", "")))
}
