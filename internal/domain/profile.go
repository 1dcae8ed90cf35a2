package domain

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Marital status values accepted by filters and the divorcee criterion.
const (
	MaritalUnmarried = "Unmarried"
	MaritalDivorced  = "Divorced"
	MaritalWidowed   = "Widowed"
	MaritalSeparated = "Separated"
)

// Subscription is the entitlement read model attached to a profile.
// Billing lives upstream; we only consume its outcome.
type Subscription struct {
	Plan         string `json:"plan" db:"subscription_plan"`
	IsSubscribed bool   `json:"is_subscribed" db:"is_subscribed"`
}

// Profile holds both a member's own attributes and their partner
// preferences. Preferences are embedded rather than split into a
// separate record because the scorer always consumes them together
// with the viewer profile.
type Profile struct {
	ID            string     `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Gender        Gender     `json:"gender" db:"gender"`
	DOB           *time.Time `json:"dob" db:"dob"`
	CurrentCity   *string    `json:"current_city" db:"current_city"`
	Education     *string    `json:"education" db:"education"`
	Occupation    *string    `json:"occupation" db:"occupation"`
	Income        *string    `json:"income" db:"income"`
	Height        *string    `json:"height" db:"height"`
	MaritalStatus *string    `json:"marital_status" db:"marital_status"`
	Caste         *string    `json:"caste" db:"caste"`
	SubCaste      *string    `json:"sub_caste" db:"sub_caste"`
	Religion      *string    `json:"religion" db:"religion"`
	MotherTongue  *string    `json:"mother_tongue" db:"mother_tongue"`
	Diet          *string    `json:"diet" db:"diet"`
	Bio           *string    `json:"bio" db:"bio"`
	ProfilePhoto  *string    `json:"profile_photo" db:"profile_photo"`
	IsVerified    bool       `json:"is_verified" db:"is_verified"`

	// Partner preferences.
	ExpectedCaste         *string `json:"expected_caste" db:"expected_caste"`
	PreferredCity         *string `json:"preferred_city" db:"preferred_city"`
	ExpectedEducation     *string `json:"expected_education" db:"expected_education"`
	ExpectedHeight        *string `json:"expected_height" db:"expected_height"`
	ExpectedIncome        *string `json:"expected_income" db:"expected_income"`
	Divorcee              *string `json:"divorcee" db:"divorcee"`
	ExpectedAgeDifference *string `json:"expected_age_difference" db:"expected_age_difference"`

	SubscriptionPlan string `json:"subscription_plan" db:"subscription_plan"`
	IsSubscribed     bool   `json:"is_subscribed" db:"is_subscribed"`

	LastActiveAt *time.Time `json:"last_active_at" db:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// AgeAt returns full years elapsed since DOB, floored on days/365.25.
// Returns -1 when DOB is not set.
func (p *Profile) AgeAt(now time.Time) int {
	if p.DOB == nil {
		return -1
	}
	days := now.Sub(*p.DOB).Hours() / 24
	return int(days / 365.25)
}

// HasEntitlement reports whether the member may use premium-gated
// features (sending interests, viewing unblurred photos).
func (p *Profile) HasEntitlement() bool {
	if p.IsSubscribed {
		return true
	}
	plan := strings.ToLower(p.SubscriptionPlan)
	return strings.Contains(plan, "gold") || strings.Contains(plan, "premium")
}

// requiredFields is the fixed set a viewer must fill before the engine
// produces any match results. Field names are reported to the client
// as-is so the app can route the user to the right form section.
var requiredFields = []struct {
	name  string
	blank func(*Profile) bool
}{
	{"dob", func(p *Profile) bool { return p.DOB == nil }},
	{"height", func(p *Profile) bool { return isBlank(p.Height) }},
	{"currentCity", func(p *Profile) bool { return isBlank(p.CurrentCity) }},
	{"education", func(p *Profile) bool { return isBlank(p.Education) }},
	{"income", func(p *Profile) bool { return isBlank(p.Income) }},
	{"maritalStatus", func(p *Profile) bool { return isBlank(p.MaritalStatus) }},
	{"caste", func(p *Profile) bool { return isBlank(p.Caste) }},
	{"expectedAgeDifference", func(p *Profile) bool { return isBlank(p.ExpectedAgeDifference) }},
	{"expectedHeight", func(p *Profile) bool { return isBlank(p.ExpectedHeight) }},
	{"expectedEducation", func(p *Profile) bool { return isBlank(p.ExpectedEducation) }},
	{"expectedIncome", func(p *Profile) bool { return isBlank(p.ExpectedIncome) }},
}

// MissingRequiredFields returns the names of required fields that are
// unset or blank. An empty result means the viewer may browse matches.
func (p *Profile) MissingRequiredFields() []string {
	var missing []string
	for _, f := range requiredFields {
		if f.blank(p) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// IsBrowsable reports whether a candidate carries the minimum fields
// needed for meaningful scoring while browsing. Search results are
// exempt from this quality bar.
func (p *Profile) IsBrowsable() bool {
	return p.DOB != nil &&
		!isBlank(p.Height) &&
		!isBlank(p.CurrentCity) &&
		!isBlank(p.Education) &&
		!isBlank(p.Income) &&
		!isBlank(p.MaritalStatus) &&
		!isBlank(p.Caste)
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// StringValue dereferences an optional text field, mapping nil to "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
