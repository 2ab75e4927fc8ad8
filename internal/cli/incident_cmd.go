package cli

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/query"
	"github.com/spf13/cobra"
)

func newIncidentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incidents",
		Aliases: []string{"incident", "inc"},
		Short:   "Maintenance incidents",
	}

	cmd.AddCommand(
		newIncidentListCmd(app),
		newIncidentShowCmd(app),
		newIncidentSetStatusCmd(app),
		placeholderCmd(app, "new", "Report a new incident", "Nueva Incidencia"),
		placeholderCmd(app, "edit <id>", "Edit an incident", "Editar Incidencia"),
	)
	return cmd
}

func newIncidentListCmd(app *App) *cobra.Command {
	flags := listFlags{facet: newFacetValue(domain.AllStatuses)}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := query.IncidentSearchFields
			if len(flags.in) > 0 {
				var err error
				if fields, err = query.SelectFields(query.IncidentFields, flags.in...); err != nil {
					return err
				}
			}

			snap, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}
			req := flags.request()
			items := query.Search(snap.Incidents, req.Search, fields...)
			items = query.FilterByFacet(items, query.IncidentStatus, req.Facet)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIncidents(items))
			return nil
		},
	}
	flags.register(cmd.Flags(), "status", "Filter by status")
	return cmd
}

func newIncidentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an incident with its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}
			idx := slices.IndexFunc(snap.Incidents, func(i domain.Incident) bool { return i.ID == id })
			if idx < 0 {
				return fmt.Errorf("incident #%d not found", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIncidentDetail(snap.Incidents[idx]))
			return nil
		},
	}
}

func newIncidentSetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change the status of an incident",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := parseStatusFor(domain.KindIncident, args[1])
			if err != nil {
				return err
			}
			if err := ensureInitialized(cmd, app); err != nil {
				return err
			}
			_, err = app.Store.SetIncidentStatus(cmd.Context(), id, status)
			return mutationError(err)
		},
	}
}
