package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/alexanderramin/nexus/internal/service"
	"github.com/spf13/cobra"
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive number", raw)
	}
	return id, nil
}

// parseStatusFor accepts only the canonical statuses a record of kind can
// hold.
func parseStatusFor(kind domain.Kind, raw string) (domain.Status, error) {
	s, ok := domain.ParseStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !ok || !slices.Contains(domain.KindStatuses(kind), s) {
		return "", fmt.Errorf("invalid status %q (want one of %s)", raw, statusChoices(kind))
	}
	return s, nil
}

func statusChoices(kind domain.Kind) string {
	statuses := domain.KindStatuses(kind)
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// ensureInitialized makes the memoized Initialize call that mutations need.
func ensureInitialized(cmd *cobra.Command, app *App) error {
	_, err := loadSnapshot(cmd, app)
	return err
}

// mutationError explains a persist failure: the change is applied for this
// process but did not reach storage.
func mutationError(err error) error {
	if errors.Is(err, service.ErrPersist) {
		return fmt.Errorf("change applied but not saved: %w", err)
	}
	return err
}
