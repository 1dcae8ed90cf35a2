package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type interestRepository struct {
	db *sqlx.DB
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *domain.Interest) error {
	if interest.ID == "" {
		interest.ID = uuid.NewString()
	}
	query := `
		INSERT INTO interests (id, sender_id, receiver_id, status, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		interest.ID, interest.SenderID, interest.ReceiverID, interest.Status, interest.Note,
	).Scan(&interest.CreatedAt, &interest.UpdatedAt)
}

func (r *interestRepository) GetByUsers(ctx context.Context, senderID, receiverID string) (*domain.Interest, error) {
	var interest domain.Interest
	query := `
		SELECT id, sender_id, receiver_id, status, note, created_at, updated_at
		FROM interests
		WHERE sender_id = $1 AND receiver_id = $2
	`
	err := r.db.GetContext(ctx, &interest, query, senderID, receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) UpdateStatus(ctx context.Context, id string, status domain.InterestStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE interests SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInterestNotFound
	}
	return nil
}

func (r *interestRepository) SentReceiverIDs(ctx context.Context, senderID string) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT receiver_id FROM interests WHERE sender_id = $1`, senderID)
	return ids, err
}

// AcceptedPartnerIDs returns connections in both directions: members
// whose interest the user accepted and members who accepted the
// user's.
func (r *interestRepository) AcceptedPartnerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	query := `
		SELECT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END
		FROM interests
		WHERE (sender_id = $1 OR receiver_id = $1) AND status = 'accepted'
	`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}
