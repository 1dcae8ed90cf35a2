package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type fakeProfileRepo struct {
	profiles  map[string]*domain.Profile
	listed    []*domain.Profile
	listErr   error
	lastQuery string
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (r *fakeProfileRepo) Delete(ctx context.Context, id string) error         { return nil }

func (r *fakeProfileRepo) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listed, nil
}

func (r *fakeProfileRepo) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Profile, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.lastQuery = query
	return r.listed, nil
}

func (r *fakeProfileRepo) TouchLastActive(ctx context.Context, id string) error { return nil }

type fakeInterestRepo struct {
	sent     []string
	accepted []string
}

func (r *fakeInterestRepo) Create(ctx context.Context, i *domain.Interest) error { return nil }

func (r *fakeInterestRepo) GetByUsers(ctx context.Context, senderID, receiverID string) (*domain.Interest, error) {
	return nil, domain.ErrInterestNotFound
}

func (r *fakeInterestRepo) UpdateStatus(ctx context.Context, id string, status domain.InterestStatus) error {
	return nil
}

func (r *fakeInterestRepo) SentReceiverIDs(ctx context.Context, senderID string) ([]string, error) {
	return r.sent, nil
}

func (r *fakeInterestRepo) AcceptedPartnerIDs(ctx context.Context, userID string) ([]string, error) {
	return r.accepted, nil
}

func completeViewer(id string) *domain.Profile {
	dob := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Profile{
		ID:                    id,
		Name:                  "Priya Deshmukh",
		Gender:                domain.GenderFemale,
		DOB:                   &dob,
		Height:                strPtr("160 cm"),
		CurrentCity:           strPtr("Pune"),
		Education:             strPtr("Master's Degree"),
		Income:                strPtr("10-15 LPA"),
		MaritalStatus:         strPtr(domain.MaritalUnmarried),
		Caste:                 strPtr("Brahmin"),
		ExpectedAgeDifference: strPtr("3"),
		ExpectedHeight:        strPtr("170-180 cm"),
		ExpectedEducation:     strPtr("Bachelor's Degree"),
		ExpectedIncome:        strPtr("10-15 LPA"),
	}
}

func newBrowseUseCase(profileRepo *fakeProfileRepo, interestRepo *fakeInterestRepo) *MatchUseCase {
	return NewMatchUseCase(profileRepo, interestRepo, nil, 7*24*time.Hour, 20)
}

func defaultBrowseRequest() *BrowseRequest {
	return &BrowseRequest{
		Tab:      domain.TabAll,
		Sort:     domain.SortCompatibility,
		Criteria: domain.DefaultFilterCriteria(),
	}
}

func TestBrowseCompletenessGate(t *testing.T) {
	viewer := completeViewer("viewer-1")
	viewer.Income = nil
	viewer.ExpectedIncome = strPtr("")

	profileRepo := &fakeProfileRepo{profiles: map[string]*domain.Profile{"viewer-1": viewer}}
	uc := newBrowseUseCase(profileRepo, &fakeInterestRepo{})

	_, err := uc.Browse(context.Background(), "viewer-1", defaultBrowseRequest())

	var incomplete *domain.IncompleteProfileError
	require.ErrorAs(t, err, &incomplete)
	assert.ElementsMatch(t, []string{"income", "expectedIncome"}, incomplete.Missing)
}

func TestBrowseFetchFailureDegrades(t *testing.T) {
	profileRepo := &fakeProfileRepo{
		profiles: map[string]*domain.Profile{"viewer-1": completeViewer("viewer-1")},
		listErr:  errors.New("connection refused"),
	}
	uc := newBrowseUseCase(profileRepo, &fakeInterestRepo{})

	resp, err := uc.Browse(context.Background(), "viewer-1", defaultBrowseRequest())

	require.NoError(t, err)
	assert.True(t, resp.Stale)
	assert.Empty(t, resp.Matches)
}

func TestBrowsePipeline(t *testing.T) {
	viewer := completeViewer("viewer-1")
	strong := browsableProfile("strong", domain.GenderMale)
	weak := browsableProfile("weak", domain.GenderMale)
	weak.CurrentCity = strPtr("Chennai")
	weak.Caste = strPtr("Maratha")
	weak.Income = strPtr("5-10 LPA")

	profileRepo := &fakeProfileRepo{
		profiles: map[string]*domain.Profile{"viewer-1": viewer},
		listed:   []*domain.Profile{weak, strong},
	}
	interestRepo := &fakeInterestRepo{sent: []string{"strong"}}
	uc := newBrowseUseCase(profileRepo, interestRepo)

	resp, err := uc.Browse(context.Background(), "viewer-1", defaultBrowseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "strong", resp.Matches[0].ID)
	assert.Greater(t, resp.Matches[0].Compatibility, resp.Matches[1].Compatibility)
	assert.True(t, resp.Matches[0].InterestSent)
	assert.False(t, resp.Matches[1].InterestSent)
	assert.Equal(t, 2, resp.Total)
}

func TestBrowseSearchForcesAllTab(t *testing.T) {
	viewer := completeViewer("viewer-1")
	remote := browsableProfile("remote", domain.GenderMale)
	remote.CurrentCity = strPtr("Chennai")

	profileRepo := &fakeProfileRepo{
		profiles: map[string]*domain.Profile{"viewer-1": viewer},
		listed:   []*domain.Profile{remote},
	}
	uc := newBrowseUseCase(profileRepo, &fakeInterestRepo{})

	req := defaultBrowseRequest()
	req.Tab = domain.TabNearby
	req.Query = "chennai"

	resp, err := uc.Browse(context.Background(), "viewer-1", req)
	require.NoError(t, err)

	// A nearby tab would exclude the Chennai candidate; an active
	// search bypasses the tab predicate.
	assert.Len(t, resp.Matches, 1)
	assert.Equal(t, "chennai", profileRepo.lastQuery)
}

func TestBrowsePagination(t *testing.T) {
	viewer := completeViewer("viewer-1")
	listed := []*domain.Profile{
		browsableProfile("c1", domain.GenderMale),
		browsableProfile("c2", domain.GenderMale),
		browsableProfile("c3", domain.GenderMale),
	}
	profileRepo := &fakeProfileRepo{
		profiles: map[string]*domain.Profile{"viewer-1": viewer},
		listed:   listed,
	}
	uc := newBrowseUseCase(profileRepo, &fakeInterestRepo{})

	req := defaultBrowseRequest()
	req.Page = 2
	req.Limit = 2

	resp, err := uc.Browse(context.Background(), "viewer-1", req)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Matches, 1)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.Limit)

	t.Run("page past the end is empty", func(t *testing.T) {
		req.Page = 5
		resp, err := uc.Browse(context.Background(), "viewer-1", req)
		require.NoError(t, err)
		assert.Empty(t, resp.Matches)
		assert.Equal(t, 3, resp.Total)
	})
}

func TestTabCounts(t *testing.T) {
	viewer := completeViewer("viewer-1")
	fresh := browsableProfile("fresh", domain.GenderMale)
	fresh.CreatedAt = time.Now().Add(-24 * time.Hour)
	remote := browsableProfile("remote", domain.GenderMale)
	remote.CurrentCity = strPtr("Chennai")

	profileRepo := &fakeProfileRepo{
		profiles: map[string]*domain.Profile{"viewer-1": viewer},
		listed:   []*domain.Profile{fresh, remote},
	}
	uc := newBrowseUseCase(profileRepo, &fakeInterestRepo{})

	counts, err := uc.TabCounts(context.Background(), "viewer-1")
	require.NoError(t, err)

	assert.Equal(t, 2, counts.All)
	assert.Equal(t, 1, counts.New)
	assert.Equal(t, 1, counts.Nearby)
}
