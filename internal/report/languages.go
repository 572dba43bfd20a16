package report

import (
	"sort"

	"github.com/m4ster-slave/profilegen/internal/models"
)

// maxLanguages caps the ranked distribution at the top entries.
const maxLanguages = 10

// AggregateLanguages reduces per-repository byte counts into a ranked
// percentage distribution: bytes are summed per language across all
// repositories, converted to percentages of the grand total, sorted
// descending, and truncated to the top 10.
//
// Ties are broken by first-seen order over the input sequence, which
// keeps the result deterministic for a given input. A zero grand total
// yields an empty slice.
func AggregateLanguages(perRepo []map[string]int64) []models.LanguageShare {
	totals := make(map[string]int64)
	var order []string

	for _, repo := range perRepo {
		// Map iteration order is random, so fix first-seen order by
		// sorted key within each repository record.
		keys := make([]string, 0, len(repo))
		for lang := range repo {
			keys = append(keys, lang)
		}
		sort.Strings(keys)

		for _, lang := range keys {
			if _, seen := totals[lang]; !seen {
				order = append(order, lang)
			}
			totals[lang] += repo[lang]
		}
	}

	var grandTotal int64
	for _, n := range totals {
		grandTotal += n
	}
	if grandTotal == 0 {
		return nil
	}

	shares := make([]models.LanguageShare, 0, len(order))
	for _, lang := range order {
		shares = append(shares, models.LanguageShare{
			Name:    lang,
			Percent: float64(totals[lang]) / float64(grandTotal) * 100,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})

	if len(shares) > maxLanguages {
		shares = shares[:maxLanguages]
	}
	return shares
}
