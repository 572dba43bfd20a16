package report

import (
	"fmt"

	"github.com/m4ster-slave/profilegen/internal/models"
)

// ActivityRow formats one event as an aligned table row:
// kind padded to 16 columns, repo to 15, then the timestamp down to the
// minute. The timestamp is rendered in the event's own location.
func ActivityRow(e models.ActivityEvent) string {
	return fmt.Sprintf("%-16s | %-15s | %s", e.Kind, e.Repo, e.Timestamp.Format("2006-01-02 15:04"))
}
