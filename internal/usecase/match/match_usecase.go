package match

import (
	"context"
	"fmt"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/metrics"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

// fetchWindow is how many raw candidates one browse cycle pulls from
// the store before local filtering; pagination applies after the
// pipeline so filter results stay consistent across pages.
const fetchWindow = 200

type MatchUseCase struct {
	profileRepo   repository.ProfileRepository
	interestRepo  repository.InterestRepository
	interestCache repository.InterestCache
	newWindow     time.Duration
	pageSize      int
}

func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	interestRepo repository.InterestRepository,
	interestCache repository.InterestCache,
	newWindow time.Duration,
	pageSize int,
) *MatchUseCase {
	return &MatchUseCase{
		profileRepo:   profileRepo,
		interestRepo:  interestRepo,
		interestCache: interestCache,
		newWindow:     newWindow,
		pageSize:      pageSize,
	}
}

// BrowseRequest is one fetch cycle's worth of session state: active
// tab, sort key, search query and the current filter criteria value.
type BrowseRequest struct {
	Tab      domain.Tab
	Sort     domain.SortKey
	Query    string
	Criteria domain.FilterCriteria
	Page     int
	Limit    int
}

// BrowseResponse is the ranked page plus the tab-count summary.
type BrowseResponse struct {
	Matches []domain.MatchCandidate `json:"matches"`
	Tabs    domain.TabCounts        `json:"tabs"`
	Total   int                     `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
	// Stale marks a cycle where the candidate fetch failed and an
	// empty set is presented instead of an error.
	Stale bool `json:"stale,omitempty"`
}

// Browse runs the full pipeline for one fetch cycle: completeness
// gate, candidate fetch, enrichment, scoring, filtering, sorting and
// pagination. Everything past the fetch is pure computation over the
// request's own values; concurrent cycles share nothing.
func (uc *MatchUseCase) Browse(ctx context.Context, viewerID string, req *BrowseRequest) (*BrowseResponse, error) {
	viewer, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}

	if missing := viewer.MissingRequiredFields(); len(missing) > 0 {
		metrics.BrowseRequestsTotal.WithLabelValues("incomplete_profile").Inc()
		return nil, &domain.IncompleteProfileError{Missing: missing}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = uc.pageSize
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	searching := req.Query != ""

	var candidates []*domain.Profile
	if searching {
		candidates, err = uc.profileRepo.Search(ctx, req.Query, fetchWindow, 0)
	} else {
		candidates, err = uc.profileRepo.List(ctx, fetchWindow, 0)
	}
	if err != nil {
		// A failed fetch is "no data this cycle", never a crash.
		fmt.Printf("candidate fetch failed, presenting empty set: %v\n", err)
		metrics.BrowseRequestsTotal.WithLabelValues("fetch_failed").Inc()
		return &BrowseResponse{
			Matches: []domain.MatchCandidate{},
			Page:    page,
			Limit:   limit,
			Stale:   true,
		}, nil
	}

	sentIDs := uc.sentInterestSet(ctx, viewerID)
	connectedIDs := uc.acceptedInterestSet(ctx, viewerID)

	started := time.Now()
	now := time.Now()

	enriched := Enrich(EnrichInput{
		Viewer:          *viewer,
		Candidates:      candidates,
		SentIDs:         sentIDs,
		ConnectedIDs:    connectedIDs,
		RequireComplete: !searching,
		NewWindow:       uc.newWindow,
		Now:             now,
	})
	for i := range enriched {
		enriched[i].Compatibility = Score(*viewer, enriched[i], now)
	}

	viewerCity := domain.StringValue(viewer.CurrentCity)
	tabs := CountTabs(enriched, viewerCity)

	// An active search was already scoped server-side; the local
	// pipeline must not re-filter by tab or city.
	tab := req.Tab
	if searching {
		tab = domain.TabAll
	}
	if tab == "" {
		tab = domain.TabAll
	}

	filtered := ApplyFilters(enriched, tab, req.Criteria, viewerCity)
	SortCandidates(filtered, req.Sort)

	metrics.ScoringDuration.Observe(time.Since(started).Seconds())
	metrics.BrowseRequestsTotal.WithLabelValues("ok").Inc()

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &BrowseResponse{
		Matches: filtered[start:end],
		Tabs:    tabs,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// TabCounts computes the tab summary without filtering or sorting a
// result page.
func (uc *MatchUseCase) TabCounts(ctx context.Context, viewerID string) (*domain.TabCounts, error) {
	resp, err := uc.Browse(ctx, viewerID, &BrowseRequest{
		Tab:      domain.TabAll,
		Sort:     domain.SortCompatibility,
		Criteria: domain.DefaultFilterCriteria(),
	})
	if err != nil {
		return nil, err
	}
	return &resp.Tabs, nil
}

// sentInterestSet reads the viewer's outbound interest ids through the
// cache, falling back to the repository and warming the cache on miss.
// Interest data being unavailable degrades to an empty set; it must
// never block a browse cycle.
func (uc *MatchUseCase) sentInterestSet(ctx context.Context, viewerID string) map[string]struct{} {
	if uc.interestCache != nil {
		if ids, ok := uc.interestCache.SentIDs(ctx, viewerID); ok {
			return toSet(ids)
		}
	}
	ids, err := uc.interestRepo.SentReceiverIDs(ctx, viewerID)
	if err != nil {
		fmt.Printf("failed to load sent interests for %s: %v\n", viewerID, err)
		return map[string]struct{}{}
	}
	if uc.interestCache != nil {
		uc.interestCache.StoreSentIDs(ctx, viewerID, ids)
	}
	return toSet(ids)
}

func (uc *MatchUseCase) acceptedInterestSet(ctx context.Context, viewerID string) map[string]struct{} {
	if uc.interestCache != nil {
		if ids, ok := uc.interestCache.AcceptedIDs(ctx, viewerID); ok {
			return toSet(ids)
		}
	}
	ids, err := uc.interestRepo.AcceptedPartnerIDs(ctx, viewerID)
	if err != nil {
		fmt.Printf("failed to load connections for %s: %v\n", viewerID, err)
		return map[string]struct{}{}
	}
	if uc.interestCache != nil {
		uc.interestCache.StoreAcceptedIDs(ctx, viewerID, ids)
	}
	return toSet(ids)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
