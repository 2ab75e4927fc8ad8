package cli

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/nexus/internal/cli/formatter"
	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/query"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Scheduled tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskSetStatusCmd(app),
		newTaskCompleteCmd(app),
		newTaskReopenCmd(app),
		placeholderCmd(app, "new", "Create a new task", "Nueva Tarea"),
		placeholderCmd(app, "edit <id>", "Edit a task", "Editar Tarea"),
	)
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	flags := listFlags{facet: newFacetValue(domain.AllPriorities)}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := query.TaskSearchFields
			if len(flags.in) > 0 {
				var err error
				if fields, err = query.SelectFields(query.TaskFields, flags.in...); err != nil {
					return err
				}
			}

			snap, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}
			req := flags.request()
			items := query.Search(snap.Tasks, req.Search, fields...)
			items = query.FilterByFacet(items, query.TaskPriority, req.Facet)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
			return nil
		},
	}
	flags.register(cmd.Flags(), "priority", "Filter by priority")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task with its details",
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
			task, ok := findTask(snap.Tasks, id)
			if !ok {
				return fmt.Errorf("task #%d not found", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(task))
			return nil
		},
	}
}

func newTaskSetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> [status]",
		Short: "Change the status of a task (prompts on a terminal when omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}

			var status domain.Status
			if len(args) == 2 {
				if status, err = parseStatusFor(domain.KindTask, args[1]); err != nil {
					return err
				}
			} else {
				if !app.interactive() {
					return fmt.Errorf("status is required when not running in a terminal (one of %s)", statusChoices(domain.KindTask))
				}
				task, ok := findTask(snap.Tasks, id)
				if !ok {
					return fmt.Errorf("task #%d not found", id)
				}
				prompt := app.PromptStatus
				if prompt == nil {
					prompt = promptTaskStatus
				}
				if status, err = prompt(cmd.Context(), task); err != nil {
					return err
				}
			}

			_, err = app.Store.SetTaskStatus(cmd.Context(), id, status)
			return mutationError(err)
		},
	}
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := ensureInitialized(cmd, app); err != nil {
				return err
			}
			_, err = app.Store.CompleteTask(cmd.Context(), id)
			return mutationError(err)
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Move a task back to pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := ensureInitialized(cmd, app); err != nil {
				return err
			}
			_, err = app.Store.ReopenTask(cmd.Context(), id)
			return mutationError(err)
		},
	}
}

func findTask(tasks []domain.Task, id int) (domain.Task, bool) {
	idx := slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID == id })
	if idx < 0 {
		return domain.Task{}, false
	}
	return tasks[idx], true
}
