package match

import (
	"sort"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

// SortCandidates orders the filtered list in place by the selected
// key. The sort is stable so equal candidates keep their fetch order;
// an unknown key leaves the list untouched.
func SortCandidates(list []domain.MatchCandidate, key domain.SortKey) {
	switch key {
	case domain.SortCompatibility:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Compatibility > list[j].Compatibility
		})
	case domain.SortNewest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	case domain.SortRecentlyActive:
		sort.SliceStable(list, func(i, j int) bool {
			ti, tj := list[i].LastActiveAt, list[j].LastActiveAt
			if tj == nil {
				return ti != nil
			}
			if ti == nil {
				return false
			}
			return ti.After(*tj)
		})
	case domain.SortAgeLow:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Age < list[j].Age
		})
	case domain.SortAgeHigh:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Age > list[j].Age
		})
	}
}
