package domain

// Tab identifies a predicate-defined view over the candidate list.
type Tab string

const (
	TabAll    Tab = "all"
	TabNew    Tab = "new"
	TabNearby Tab = "nearby"
	// TabPreferred is reserved: present in the data model and counted,
	// but not currently routed by the app.
	TabPreferred Tab = "preferred"
)

// PreferredScoreFloor is the minimum compatibility for the reserved
// "preferred" tab.
const PreferredScoreFloor = 70

// SortKey selects the ordering of the filtered result list.
type SortKey string

const (
	SortCompatibility  SortKey = "compatibility"
	SortNewest         SortKey = "newest"
	SortRecentlyActive SortKey = "recently_active"
	SortAgeLow         SortKey = "age_low"
	SortAgeHigh        SortKey = "age_high"
)

// FilterCriteria is the session-scoped quick/advanced filter state.
// It is passed by value into the pure filter functions and replaced
// wholesale on every user edit; nothing mutates it in place.
type FilterCriteria struct {
	Gender         string   `json:"gender"`
	AgeMin         *int     `json:"age_min"`
	AgeMax         *int     `json:"age_max"`
	Location       string   `json:"location"`
	MaritalStatus  []string `json:"marital_status"`
	Caste          string   `json:"caste"`
	SubCaste       string   `json:"sub_caste"`
	Education      string   `json:"education"`
	Occupation     string   `json:"occupation"`
	Diet           string   `json:"diet"`
	WithPhoto      bool     `json:"with_photo"`
	ActiveRecently bool     `json:"active_recently"`
}

// DefaultFilterCriteria returns the state a fresh session (or an
// explicit "clear" action) starts from.
func DefaultFilterCriteria() FilterCriteria {
	minAge, maxAge := 18, 60
	return FilterCriteria{
		Gender: "All",
		AgeMin: &minAge,
		AgeMax: &maxAge,
		Diet:   "Any",
	}
}

// MatchCandidate is a candidate profile enriched with fields derived
// per fetch cycle. It is never persisted.
type MatchCandidate struct {
	Profile

	Age           int    `json:"age"`
	Compatibility int    `json:"compatibility"`
	DisplayName   string `json:"display_name"`
	PhotoURL      string `json:"photo_url"`
	HasPhoto      bool   `json:"has_photo"`
	IsBlurred     bool   `json:"is_blurred"`
	InterestSent  bool   `json:"interest_sent"`
	IsConnection  bool   `json:"is_connection"`
	IsNew         bool   `json:"is_new"`
	LastActive    string `json:"last_active"`
}

// TabCounts is the live per-tab summary computed over the whole
// enriched set, independent of the active tab.
type TabCounts struct {
	All       int `json:"all"`
	New       int `json:"new"`
	Nearby    int `json:"nearby"`
	Preferred int `json:"preferred"`
}
