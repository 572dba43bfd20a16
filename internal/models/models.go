package models

import "time"

// ActivityEvent is one public event from a profile's activity feed,
// already normalized at the I/O boundary: the "Event" type suffix is
// stripped and the timestamp is parsed.
type ActivityEvent struct {
	Kind      string
	Repo      string
	Timestamp time.Time

	// Degraded marks an event whose created_at could not be parsed and
	// whose Timestamp was substituted with the fetch time.
	Degraded bool
}

// StatsSummary is the immutable snapshot of the six contribution
// counters, constructed once per run.
type StatsSummary struct {
	Commits       int
	PullRequests  int
	Issues        int
	Stars         int
	ReposOwned    int
	ContributedTo int
}

// LanguageShare is one language's percentage of total counted bytes
// across all repositories.
type LanguageShare struct {
	Name    string
	Percent float64
}

// Snapshot is one stored generation run, used for run-over-run deltas.
type Snapshot struct {
	Username      string    `json:"username"`
	Commits       int       `json:"commits"`
	PullRequests  int       `json:"pull_requests"`
	Issues        int       `json:"issues"`
	Stars         int       `json:"stars"`
	ReposOwned    int       `json:"repos_owned"`
	ContributedTo int       `json:"contributed_to"`
	Followers     int       `json:"followers"`
	TopLanguage   string    `json:"top_language"`
	GeneratedAt   time.Time `json:"generated_at"`
}
