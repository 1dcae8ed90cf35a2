package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// ProfileResponse pairs the profile with its completeness state so the
// app can prompt for the missing fields without a second call.
type ProfileResponse struct {
	Profile       *domain.Profile `json:"profile"`
	IsComplete    bool            `json:"is_complete"`
	MissingFields []string        `json:"missing_fields,omitempty"`
}

// UpdateProfileRequest carries a full replacement of the editable
// fields. The client sends the canonical flat shape; no nested
// wrappers are accepted.
type UpdateProfileRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=2,max=100,fullname"`
	DOB           *time.Time `json:"dob"`
	CurrentCity   *string    `json:"current_city" binding:"omitempty,max=100"`
	Education     *string    `json:"education" binding:"omitempty,max=100"`
	Occupation    *string    `json:"occupation" binding:"omitempty,max=100"`
	Income        *string    `json:"income" binding:"omitempty,max=50"`
	Height        *string    `json:"height" binding:"omitempty,max=30"`
	MaritalStatus *string    `json:"marital_status" binding:"omitempty,oneof=Unmarried Divorced Widowed Separated"`
	Caste         *string    `json:"caste" binding:"omitempty,max=100"`
	SubCaste      *string    `json:"sub_caste" binding:"omitempty,max=100"`
	Religion      *string    `json:"religion" binding:"omitempty,max=50"`
	MotherTongue  *string    `json:"mother_tongue" binding:"omitempty,max=50"`
	Diet          *string    `json:"diet" binding:"omitempty,oneof=Veg Non-Veg"`
	Bio           *string    `json:"bio" binding:"omitempty,max=500"`
	ProfilePhoto  *string    `json:"profile_photo" binding:"omitempty,url"`

	ExpectedCaste         *string `json:"expected_caste" binding:"omitempty,max=100"`
	PreferredCity         *string `json:"preferred_city" binding:"omitempty,max=100"`
	ExpectedEducation     *string `json:"expected_education" binding:"omitempty,max=100"`
	ExpectedHeight        *string `json:"expected_height" binding:"omitempty,max=30"`
	ExpectedIncome        *string `json:"expected_income" binding:"omitempty,max=50"`
	Divorcee              *string `json:"divorcee" binding:"omitempty,oneof=yes no"`
	ExpectedAgeDifference *string `json:"expected_age_difference" binding:"omitempty,oneof=1 2 3 5 6+"`
}

// GetMyProfile returns the viewer's own profile with completeness
// info and records the activity for the freshness labels.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.profileRepo.TouchLastActive(ctx, userID); err != nil {
		fmt.Printf("failed to touch last_active for %s: %v\n", userID, err)
	}

	missing := p.MissingRequiredFields()
	return &ProfileResponse{
		Profile:       p,
		IsComplete:    len(missing) == 0,
		MissingFields: missing,
	}, nil
}

// UpdateProfile applies the provided fields and returns the refreshed
// completeness state.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(p, req)

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	missing := p.MissingRequiredFields()
	return &ProfileResponse{
		Profile:       p,
		IsComplete:    len(missing) == 0,
		MissingFields: missing,
	}, nil
}

func applyUpdate(p *domain.Profile, req *UpdateProfileRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.DOB != nil {
		p.DOB = req.DOB
	}
	if req.CurrentCity != nil {
		p.CurrentCity = req.CurrentCity
	}
	if req.Education != nil {
		p.Education = req.Education
	}
	if req.Occupation != nil {
		p.Occupation = req.Occupation
	}
	if req.Income != nil {
		p.Income = req.Income
	}
	if req.Height != nil {
		p.Height = req.Height
	}
	if req.MaritalStatus != nil {
		p.MaritalStatus = req.MaritalStatus
	}
	if req.Caste != nil {
		p.Caste = req.Caste
	}
	if req.SubCaste != nil {
		p.SubCaste = req.SubCaste
	}
	if req.Religion != nil {
		p.Religion = req.Religion
	}
	if req.MotherTongue != nil {
		p.MotherTongue = req.MotherTongue
	}
	if req.Diet != nil {
		p.Diet = req.Diet
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.ProfilePhoto != nil {
		p.ProfilePhoto = req.ProfilePhoto
	}
	if req.ExpectedCaste != nil {
		p.ExpectedCaste = req.ExpectedCaste
	}
	if req.PreferredCity != nil {
		p.PreferredCity = req.PreferredCity
	}
	if req.ExpectedEducation != nil {
		p.ExpectedEducation = req.ExpectedEducation
	}
	if req.ExpectedHeight != nil {
		p.ExpectedHeight = req.ExpectedHeight
	}
	if req.ExpectedIncome != nil {
		p.ExpectedIncome = req.ExpectedIncome
	}
	if req.Divorcee != nil {
		p.Divorcee = req.Divorcee
	}
	if req.ExpectedAgeDifference != nil {
		p.ExpectedAgeDifference = req.ExpectedAgeDifference
	}
}
