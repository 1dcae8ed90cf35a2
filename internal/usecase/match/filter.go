package match

import (
	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

// recentActivityLabels is the freshness vocabulary the
// recently-active quick filter accepts.
var recentActivityLabels = map[string]struct{}{
	"Recently":   {},
	"Today":      {},
	"1 day ago":  {},
	"2 days ago": {},
}

// ApplyFilters runs the conjunctive predicate chain over an enriched
// candidate list: tab predicate first, then quick and advanced
// filters. Every predicate must pass; evaluation short-circuits on the
// first failure. Candidates are returned in input order.
func ApplyFilters(candidates []domain.MatchCandidate, tab domain.Tab, criteria domain.FilterCriteria, viewerCity string) []domain.MatchCandidate {
	out := make([]domain.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !matchesTab(c, tab, viewerCity) {
			continue
		}
		if !matchesCriteria(c, criteria) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesTab(c domain.MatchCandidate, tab domain.Tab, viewerCity string) bool {
	switch tab {
	case domain.TabNew:
		return c.IsNew
	case domain.TabNearby:
		return SameCity(domain.StringValue(c.CurrentCity), viewerCity)
	case domain.TabPreferred:
		return c.Compatibility >= domain.PreferredScoreFloor
	default:
		return true
	}
}

func matchesCriteria(c domain.MatchCandidate, f domain.FilterCriteria) bool {
	if f.Gender != "" && f.Gender != "All" && string(c.Gender) != f.Gender {
		return false
	}

	// Both bounds are required for the age predicate to apply.
	if f.AgeMin != nil && f.AgeMax != nil {
		if c.Age < *f.AgeMin || c.Age > *f.AgeMax {
			return false
		}
	}

	if f.Location != "" && !FuzzyMatch(domain.StringValue(c.CurrentCity), f.Location) {
		return false
	}

	if len(f.MaritalStatus) > 0 {
		member := false
		for _, s := range f.MaritalStatus {
			if domain.StringValue(c.MaritalStatus) == s {
				member = true
				break
			}
		}
		if !member {
			return false
		}
	}

	if f.Caste != "" && !FuzzyMatch(domain.StringValue(c.Caste), f.Caste) {
		return false
	}
	if f.SubCaste != "" && !FuzzyMatch(domain.StringValue(c.SubCaste), f.SubCaste) {
		return false
	}

	if f.Education != "" && !FuzzyMatch(domain.StringValue(c.Education), f.Education) {
		return false
	}
	if f.Occupation != "" && !FuzzyMatch(domain.StringValue(c.Occupation), f.Occupation) {
		return false
	}

	if f.Diet != "" && f.Diet != "Any" && domain.StringValue(c.Diet) != f.Diet {
		return false
	}

	if f.WithPhoto && !c.HasPhoto {
		return false
	}

	if f.ActiveRecently {
		if _, ok := recentActivityLabels[c.LastActive]; !ok {
			return false
		}
	}

	return true
}

// CountTabs summarizes how many candidates each tab would show. The
// counts are computed over the whole enriched set, independent of the
// currently active tab.
func CountTabs(candidates []domain.MatchCandidate, viewerCity string) domain.TabCounts {
	var counts domain.TabCounts
	for _, c := range candidates {
		if c.Compatibility > 0 {
			counts.All++
		}
		if c.IsNew {
			counts.New++
		}
		if SameCity(domain.StringValue(c.CurrentCity), viewerCity) {
			counts.Nearby++
		}
		if c.Compatibility >= domain.PreferredScoreFloor {
			counts.Preferred++
		}
	}
	return counts
}
