// Package client holds the pieces a UI needs to work against the catalog
// API: a thin REST client, an in-memory mirror of the server's list filters
// for instantaneous re-filtering, a debounced search driver and an immutable
// draft-report form state.
package client

import (
	"sort"
	"strings"

	"github.com/scamdex/scamdex-api/models"
)

// Sort keys accepted by Filter. Note the direction split: date and fraud
// score sort descending like the server, title sorts ascending while the
// server's fixed policy is descending for every key. The asymmetry is
// long-standing observed behavior and is kept on purpose.
const (
	SortByDate       = "date"
	SortByFraudScore = "fraudScore"
	SortByTitle      = "title"
)

// Filter reproduces the server's list-filter semantics over a result set the
// caller already holds, so tag/score/sort tweaks don't need a round trip.
//
// Text matching is case-insensitive substring containment over title,
// summary, tags and regions. That is a weaker approximation of the server's
// indexed relevance search: the two can disagree in both directions (the
// index stems words, the mirror matches partial words) and mirror results
// carry no relevance order.
type Filter struct {
	Query     string
	Tags      []string
	Platforms []string
	ScoreMin  *int // inclusive, nil means unbounded
	ScoreMax  *int // inclusive, nil means unbounded
	SortBy    string
}

// Apply returns the reports matching the filter, sorted by SortBy. The input
// slice is not modified.
func (f Filter) Apply(reports []models.ScamReport) []models.ScamReport {
	out := make([]models.ScamReport, 0, len(reports))
	for _, r := range reports {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	f.sortReports(out)
	return out
}

func (f Filter) matches(r models.ScamReport) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !textMatch(r, q) {
		return false
	}
	if len(f.Tags) > 0 && !intersects(r.Tags, f.Tags) {
		return false
	}
	if len(f.Platforms) > 0 && !intersects(r.Platform, f.Platforms) {
		return false
	}
	if f.ScoreMin != nil && r.FraudScore < *f.ScoreMin {
		return false
	}
	if f.ScoreMax != nil && r.FraudScore > *f.ScoreMax {
		return false
	}
	return true
}

func textMatch(r models.ScamReport, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Summary), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, region := range r.Regions {
		if strings.Contains(strings.ToLower(region), q) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (f Filter) sortReports(reports []models.ScamReport) {
	switch f.SortBy {
	case SortByFraudScore:
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].FraudScore > reports[j].FraudScore
		})
	case SortByTitle:
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Title < reports[j].Title
		})
	default: // SortByDate
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].CreatedAt > reports[j].CreatedAt
		})
	}
}
