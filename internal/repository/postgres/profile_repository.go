package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, name, gender, dob, current_city, education, occupation, income,
	height, marital_status, caste, sub_caste, religion, mother_tongue,
	diet, bio, profile_photo, is_verified,
	expected_caste, preferred_city, expected_education, expected_height,
	expected_income, divorcee, expected_age_difference,
	subscription_plan, is_subscribed, last_active_at, created_at, updated_at`

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO profiles (
			id, name, gender, dob, current_city, education, occupation, income,
			height, marital_status, caste, sub_caste, religion, mother_tongue,
			diet, bio, profile_photo, is_verified,
			expected_caste, preferred_city, expected_education, expected_height,
			expected_income, divorcee, expected_age_difference,
			subscription_plan, is_subscribed, last_active_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Name, profile.Gender, profile.DOB, profile.CurrentCity,
		profile.Education, profile.Occupation, profile.Income, profile.Height,
		profile.MaritalStatus, profile.Caste, profile.SubCaste, profile.Religion,
		profile.MotherTongue, profile.Diet, profile.Bio, profile.ProfilePhoto,
		profile.IsVerified, profile.ExpectedCaste, profile.PreferredCity,
		profile.ExpectedEducation, profile.ExpectedHeight, profile.ExpectedIncome,
		profile.Divorcee, profile.ExpectedAgeDifference,
		profile.SubscriptionPlan, profile.IsSubscribed, profile.LastActiveAt,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, gender = $2, dob = $3, current_city = $4, education = $5,
		    occupation = $6, income = $7, height = $8, marital_status = $9,
		    caste = $10, sub_caste = $11, religion = $12, mother_tongue = $13,
		    diet = $14, bio = $15, profile_photo = $16, is_verified = $17,
		    expected_caste = $18, preferred_city = $19, expected_education = $20,
		    expected_height = $21, expected_income = $22, divorcee = $23,
		    expected_age_difference = $24, subscription_plan = $25,
		    is_subscribed = $26, updated_at = CURRENT_TIMESTAMP
		WHERE id = $27
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.Gender, profile.DOB, profile.CurrentCity,
		profile.Education, profile.Occupation, profile.Income, profile.Height,
		profile.MaritalStatus, profile.Caste, profile.SubCaste, profile.Religion,
		profile.MotherTongue, profile.Diet, profile.Bio, profile.ProfilePhoto,
		profile.IsVerified, profile.ExpectedCaste, profile.PreferredCity,
		profile.ExpectedEducation, profile.ExpectedHeight, profile.ExpectedIncome,
		profile.Divorcee, profile.ExpectedAgeDifference,
		profile.SubscriptionPlan, profile.IsSubscribed,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `SELECT` + profileColumns + `
		FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &profiles, query, limit, offset)
	return profiles, err
}

// Search is the server-side free-text search: name, city, caste,
// education and occupation, case-insensitively.
func (r *profileRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	pattern := "%" + query + "%"
	q := `SELECT` + profileColumns + `
		FROM profiles
		WHERE name ILIKE $1
		   OR current_city ILIKE $1
		   OR caste ILIKE $1
		   OR education ILIKE $1
		   OR occupation ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &profiles, q, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("profile search failed: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) TouchLastActive(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET last_active_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	return err
}
