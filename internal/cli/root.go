package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and host hooks used by CLI commands.
type App struct {
	Store     service.RecordStore
	Dashboard service.DashboardService

	// DashboardDefaults seeds the dashboard command's limit flags.
	DashboardDefaults contract.DashboardRequest

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// PromptStatus asks the user for a new task status. Nil uses a huh
	// select form.
	PromptStatus func(ctx context.Context, task domain.Task) (domain.Status, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "nexus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Maintenance, task and cleaning tracker for residential buildings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDashboardCmd(app),
		newIncidentsCmd(app),
		newTasksCmd(app),
		newCleaningCmd(app),
		placeholderCmd(app, "assistant", "Ask the maintenance assistant", "Asistente IA"),
		placeholderCmd(app, "contact", "Contact and demo requests", "Contacto & Demo"),
	)

	return root
}

// NoticePrinter is a service.Notifier that renders notices to W.
type NoticePrinter struct {
	W io.Writer
}

func (p NoticePrinter) Notify(_ context.Context, n service.Notice) {
	if p.W == nil {
		return
	}
	fmt.Fprintln(p.W, formatter.FormatNotice(string(n.Variant), n.Title, n.Message))
}

// loadSnapshot initializes the store (memoized) and returns its collections.
// A failed seed write is reported on stderr and otherwise ignored.
func loadSnapshot(cmd *cobra.Command, app *App) (service.Snapshot, error) {
	snap, err := app.Store.Initialize(cmd.Context())
	if err != nil {
		if !errors.Is(err, service.ErrPersist) {
			return service.Snapshot{}, err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("warning: "+err.Error()))
	}
	return snap, nil
}

// runUnavailable reports a placeholder intent. It is not a failure.
func runUnavailable(cmd *cobra.Command, app *App, intent string) error {
	if err := app.Store.Unavailable(cmd.Context(), intent); err != nil && !errors.Is(err, service.ErrNotAvailable) {
		return err
	}
	return nil
}

func placeholderCmd(app *App, use, short, intent string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnavailable(cmd, app, intent)
		},
	}
}
