package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

func browsableProfile(id string, gender domain.Gender) *domain.Profile {
	dob := time.Date(1998, 6, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Profile{
		ID:            id,
		Name:          "Rahul Kulkarni",
		Gender:        gender,
		DOB:           &dob,
		Height:        strPtr("175 cm"),
		CurrentCity:   strPtr("Pune"),
		Education:     strPtr("Master's Degree"),
		Income:        strPtr("10-15 LPA"),
		MaritalStatus: strPtr(domain.MaritalUnmarried),
		Caste:         strPtr("Brahmin"),
		CreatedAt:     scoreNow.Add(-30 * 24 * time.Hour),
	}
}

func enrichInput(mod func(*EnrichInput)) EnrichInput {
	in := EnrichInput{
		Viewer:          viewerWith(nil),
		SentIDs:         map[string]struct{}{},
		ConnectedIDs:    map[string]struct{}{},
		RequireComplete: true,
		NewWindow:       7 * 24 * time.Hour,
		Now:             scoreNow,
	}
	if mod != nil {
		mod(&in)
	}
	return in
}

func TestEnrichEligibility(t *testing.T) {
	t.Run("same gender dropped", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderFemale)}
		})
		assert.Empty(t, Enrich(in))
	})

	t.Run("viewer's own profile dropped", func(t *testing.T) {
		self := browsableProfile("viewer-1", domain.GenderMale)
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{self}
		})
		assert.Empty(t, Enrich(in))
	})

	t.Run("incomplete candidate dropped while browsing", func(t *testing.T) {
		p := browsableProfile("c1", domain.GenderMale)
		p.Height = nil
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{p}
		})
		assert.Empty(t, Enrich(in))
	})

	t.Run("incomplete candidate kept while searching", func(t *testing.T) {
		p := browsableProfile("c1", domain.GenderMale)
		p.Height = nil
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{p}
			in.RequireComplete = false
		})
		assert.Len(t, Enrich(in), 1)
	})

	t.Run("eligible candidate kept", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		assert.Len(t, Enrich(in), 1)
	})
}

func TestEnrichDerivedFields(t *testing.T) {
	t.Run("age derived from dob", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.Equal(t, 27, out[0].Age)
	})

	t.Run("missing photo gets placeholder", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.Equal(t, PlaceholderPhotoURL, out[0].PhotoURL)
		assert.False(t, out[0].HasPhoto)
	})

	t.Run("real photo kept", func(t *testing.T) {
		p := browsableProfile("c1", domain.GenderMale)
		p.ProfilePhoto = strPtr("https://cdn.example.com/p/c1.jpg")
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{p}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.Equal(t, "https://cdn.example.com/p/c1.jpg", out[0].PhotoURL)
		assert.True(t, out[0].HasPhoto)
	})

	t.Run("empty bio gets stock text", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Bio)
		assert.Equal(t, DefaultBio, *out[0].Bio)
	})

	t.Run("interest and connection flags from sets", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{
				browsableProfile("c1", domain.GenderMale),
				browsableProfile("c2", domain.GenderMale),
			}
			in.SentIDs = map[string]struct{}{"c1": {}}
			in.ConnectedIDs = map[string]struct{}{"c2": {}}
		})
		out := Enrich(in)
		require.Len(t, out, 2)
		assert.True(t, out[0].InterestSent)
		assert.False(t, out[0].IsConnection)
		assert.False(t, out[1].InterestSent)
		assert.True(t, out[1].IsConnection)
	})

	t.Run("is new is deterministic on created_at", func(t *testing.T) {
		fresh := browsableProfile("c1", domain.GenderMale)
		fresh.CreatedAt = scoreNow.Add(-3 * 24 * time.Hour)
		old := browsableProfile("c2", domain.GenderMale)
		old.CreatedAt = scoreNow.Add(-10 * 24 * time.Hour)
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{fresh, old}
		})
		out := Enrich(in)
		require.Len(t, out, 2)
		assert.True(t, out[0].IsNew)
		assert.False(t, out[1].IsNew)
	})
}

func TestEnrichBlurAndMasking(t *testing.T) {
	t.Run("unentitled viewer sees blurred masked cards", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.True(t, out[0].IsBlurred)
		assert.Equal(t, "***** Kulkarni", out[0].DisplayName)
	})

	t.Run("subscribed viewer sees full names", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Viewer.IsSubscribed = true
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.False(t, out[0].IsBlurred)
		assert.Equal(t, "Rahul Kulkarni", out[0].DisplayName)
	})

	t.Run("connections are never blurred", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
			in.ConnectedIDs = map[string]struct{}{"c1": {}}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.False(t, out[0].IsBlurred)
		assert.Equal(t, "Rahul Kulkarni", out[0].DisplayName)
	})

	t.Run("single name masked entirely", func(t *testing.T) {
		p := browsableProfile("c1", domain.GenderMale)
		p.Name = "Rahul"
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{p}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.Equal(t, "****", out[0].DisplayName)
	})
}

func TestLastActiveLabel(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"under an hour", 20 * time.Minute, "Recently"},
		{"same day", 5 * time.Hour, "Today"},
		{"one day", 30 * time.Hour, "1 day ago"},
		{"two days", 60 * time.Hour, "2 days ago"},
		{"longer", 200 * time.Hour, "Over a week ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := browsableProfile("c1", domain.GenderMale)
			at := scoreNow.Add(-tt.elapsed)
			p.LastActiveAt = &at
			in := enrichInput(func(in *EnrichInput) {
				in.Candidates = []*domain.Profile{p}
			})
			out := Enrich(in)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].LastActive)
		})
	}

	t.Run("never active is unlabeled", func(t *testing.T) {
		in := enrichInput(func(in *EnrichInput) {
			in.Candidates = []*domain.Profile{browsableProfile("c1", domain.GenderMale)}
		})
		out := Enrich(in)
		require.Len(t, out, 1)
		assert.Equal(t, "", out[0].LastActive)
	})
}
