package cli

import (
	"fmt"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/query"
	"github.com/spf13/cobra"
)

func newCleaningCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cleaning",
		Aliases: []string{"clean"},
		Short:   "Cleaning schedule",
	}

	cmd.AddCommand(
		newCleaningListCmd(app),
		newCleaningSetStatusCmd(app),
		placeholderCmd(app, "new", "Schedule a new cleaning job", "Nueva Limpieza"),
		placeholderCmd(app, "history <id>", "Show the cleaning history of an area", "Ver Historial"),
	)
	return cmd
}

func newCleaningListCmd(app *App) *cobra.Command {
	flags := listFlags{facet: newFacetValue(domain.AllCleaningTypes)}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cleaning jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := query.CleaningSearchFields
			if len(flags.in) > 0 {
				var err error
				if fields, err = query.SelectFields(query.CleaningFields, flags.in...); err != nil {
					return err
				}
			}

			snap, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}
			req := flags.request()
			items := query.Search(snap.CleaningJobs, req.Search, fields...)
			items = query.FilterByFacet(items, query.CleaningType, req.Facet)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCleaningJobs(items))
			return nil
		},
	}
	flags.register(cmd.Flags(), "type", "Filter by cleaning type")
	return cmd
}

func newCleaningSetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change the status of a cleaning job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := parseStatusFor(domain.KindCleaningJob, args[1])
			if err != nil {
				return err
			}
			if err := ensureInitialized(cmd, app); err != nil {
				return err
			}
			_, err = app.Store.SetCleaningJobStatus(cmd.Context(), id, status)
			return mutationError(err)
		},
	}
}
