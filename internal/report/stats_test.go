package report

import (
	"strings"
	"testing"

	"github.com/m4ster-slave/profilegen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsTable_Layout(t *testing.T) {
	got := StatsTable(models.StatsSummary{
		Commits:       1234,
		PullRequests:  56,
		Issues:        7,
		Stars:         89,
		ReposOwned:    10,
		ContributedTo: 3,
	})

	want := strings.Join([]string{
		"+-------------+------------------------+----------------+--------------------------------------+",
		"|   Metric    |         Value          |     Metric     |                Value                 |",
		"+-------------+------------------------+----------------+--------------------------------------+",
		"|   Commits   |                   1234 | Issues opened  |                                    7 |",
		"| PRs opened  |                     56 | Stars received |                                   89 |",
		"| Repos owned |                     10 | Contributed to |                                    3 |",
		"+-------------+------------------------+----------------+--------------------------------------+",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestStatsTable_ZeroValues(t *testing.T) {
	got := StatsTable(models.StatsSummary{})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 7)

	// All rows share the same width; zeros still render.
	for _, line := range lines {
		assert.Len(t, line, len(lines[0]))
	}
	assert.Contains(t, lines[3], "|                      0 |")
}
