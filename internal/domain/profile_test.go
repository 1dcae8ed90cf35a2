package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil dob", func(t *testing.T) {
		p := &Profile{}
		assert.Equal(t, -1, p.AgeAt(now))
	})

	t.Run("full years floored", func(t *testing.T) {
		dob := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)
		p := &Profile{DOB: &dob}
		assert.Equal(t, 30, p.AgeAt(now))
	})

	t.Run("birthday not yet reached", func(t *testing.T) {
		dob := time.Date(1996, 6, 15, 0, 0, 0, 0, time.UTC)
		p := &Profile{DOB: &dob}
		assert.Equal(t, 29, p.AgeAt(now))
	})
}

func TestHasEntitlement(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want bool
	}{
		{"no subscription", Profile{}, false},
		{"subscribed flag", Profile{IsSubscribed: true}, true},
		{"gold plan string", Profile{SubscriptionPlan: "Gold Annual"}, true},
		{"premium plan string", Profile{SubscriptionPlan: "premium-monthly"}, true},
		{"case insensitive plan", Profile{SubscriptionPlan: "PREMIUM"}, true},
		{"basic plan", Profile{SubscriptionPlan: "basic"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.HasEntitlement())
		})
	}
}

func TestMissingRequiredFields(t *testing.T) {
	dob := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)
	complete := Profile{
		DOB:                   &dob,
		Height:                strPtr("160 cm"),
		CurrentCity:           strPtr("Pune"),
		Education:             strPtr("Master's Degree"),
		Income:                strPtr("10-15 LPA"),
		MaritalStatus:         strPtr(MaritalUnmarried),
		Caste:                 strPtr("Brahmin"),
		ExpectedAgeDifference: strPtr("3"),
		ExpectedHeight:        strPtr("170-180 cm"),
		ExpectedEducation:     strPtr("Bachelor's Degree"),
		ExpectedIncome:        strPtr("10-15 LPA"),
	}

	t.Run("complete profile has no missing fields", func(t *testing.T) {
		assert.Empty(t, complete.MissingRequiredFields())
	})

	t.Run("empty profile misses all eleven", func(t *testing.T) {
		p := Profile{}
		assert.Len(t, p.MissingRequiredFields(), 11)
	})

	t.Run("blank string counts as missing", func(t *testing.T) {
		p := complete
		p.Caste = strPtr("   ")
		assert.Equal(t, []string{"caste"}, p.MissingRequiredFields())
	})

	t.Run("field names match the client form", func(t *testing.T) {
		p := complete
		p.DOB = nil
		p.ExpectedIncome = nil
		assert.ElementsMatch(t, []string{"dob", "expectedIncome"}, p.MissingRequiredFields())
	})
}

func TestIsBrowsable(t *testing.T) {
	dob := time.Date(1998, 6, 15, 0, 0, 0, 0, time.UTC)
	p := Profile{
		DOB:           &dob,
		Height:        strPtr("175 cm"),
		CurrentCity:   strPtr("Pune"),
		Education:     strPtr("Master's Degree"),
		Income:        strPtr("10-15 LPA"),
		MaritalStatus: strPtr(MaritalUnmarried),
		Caste:         strPtr("Brahmin"),
	}
	assert.True(t, p.IsBrowsable())

	// Preference fields are not part of the browsable bar.
	assert.Nil(t, p.ExpectedHeight)

	p.Income = nil
	assert.False(t, p.IsBrowsable())
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "Pune", StringValue(strPtr("Pune")))
}
