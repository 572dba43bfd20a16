package report

import (
	"fmt"

	"github.com/m4ster-slave/profilegen/internal/models"
)

// StatsTable lays the six counters out as a fixed two-column ASCII table:
// borders, a header row, and three data rows with two metric/value pairs
// each. Numeric fields are right-aligned at widths 22 and 36.
func StatsTable(s models.StatsSummary) string {
	return fmt.Sprintf(
		"+-------------+------------------------+----------------+--------------------------------------+\n"+
			"|   Metric    |         Value          |     Metric     |                Value                 |\n"+
			"+-------------+------------------------+----------------+--------------------------------------+\n"+
			"|   Commits   | %22d | Issues opened  | %36d |\n"+
			"| PRs opened  | %22d | Stars received | %36d |\n"+
			"| Repos owned | %22d | Contributed to | %36d |\n"+
			"+-------------+------------------------+----------------+--------------------------------------+",
		s.Commits, s.Issues,
		s.PullRequests, s.Stars,
		s.ReposOwned, s.ContributedTo,
	)
}
