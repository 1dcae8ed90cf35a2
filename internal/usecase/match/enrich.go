package match

import (
	"strings"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

const (
	// PlaceholderPhotoURL substitutes a missing profile photo so cards
	// always render; HasPhoto separately tracks the real state.
	PlaceholderPhotoURL = "https://via.placeholder.com/200x250?text=Profile"

	// DefaultBio fills an empty bio field.
	DefaultBio = "Looking for a compatible life partner."
)

// EnrichInput carries everything a single enrichment pass needs.
// Enrichment must run before scoring and filtering: several predicates
// depend on the derived fields (age, hasPhoto, freshness).
type EnrichInput struct {
	Viewer          domain.Profile
	Candidates      []*domain.Profile
	SentIDs         map[string]struct{}
	ConnectedIDs    map[string]struct{}
	RequireComplete bool
	NewWindow       time.Duration
	Now             time.Time
}

// Enrich derives the ephemeral candidate fields for one fetch cycle
// and applies the eligibility invariant: a candidate is dropped unless
// its gender differs from the viewer's and its id differs from the
// viewer's. When RequireComplete is set (browsing, not searching),
// candidates missing core fields are dropped too.
func Enrich(in EnrichInput) []domain.MatchCandidate {
	viewerEntitled := in.Viewer.HasEntitlement()
	out := make([]domain.MatchCandidate, 0, len(in.Candidates))

	for _, p := range in.Candidates {
		if p == nil || p.ID == in.Viewer.ID || p.Gender == in.Viewer.Gender {
			continue
		}
		if in.RequireComplete && !p.IsBrowsable() {
			continue
		}

		c := domain.MatchCandidate{Profile: *p}
		c.Age = p.AgeAt(in.Now)

		if p.ProfilePhoto != nil && *p.ProfilePhoto != "" {
			c.PhotoURL = *p.ProfilePhoto
			c.HasPhoto = true
		} else {
			c.PhotoURL = PlaceholderPhotoURL
		}

		if c.Bio == nil || *c.Bio == "" {
			bio := DefaultBio
			c.Bio = &bio
		}

		_, c.InterestSent = in.SentIDs[p.ID]
		_, c.IsConnection = in.ConnectedIDs[p.ID]

		// Connections may always see each other; everyone else is
		// blurred for unentitled viewers.
		c.IsBlurred = !viewerEntitled && !c.IsConnection
		c.DisplayName = p.Name
		if c.IsBlurred {
			c.DisplayName = maskFirstName(p.Name)
		}

		c.IsNew = in.Now.Sub(p.CreatedAt) <= in.NewWindow
		c.LastActive = lastActiveLabel(p.LastActiveAt, in.Now)

		out = append(out, c)
	}
	return out
}

// lastActiveLabel buckets an activity timestamp into the display
// vocabulary the recently-active filter understands.
func lastActiveLabel(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	elapsed := now.Sub(*t)
	switch {
	case elapsed < time.Hour:
		return "Recently"
	case elapsed < 24*time.Hour:
		return "Today"
	case elapsed < 48*time.Hour:
		return "1 day ago"
	case elapsed < 72*time.Hour:
		return "2 days ago"
	default:
		return "Over a week ago"
	}
}

// maskFirstName hides the first name while keeping the rest readable:
// "Ananya Sharma" becomes "****** Sharma".
func maskFirstName(full string) string {
	if full == "" {
		return "****"
	}
	names := strings.Fields(full)
	if len(names) < 2 {
		return "****"
	}
	return strings.Repeat("*", len(names[0])) + " " + strings.Join(names[1:], " ")
}
