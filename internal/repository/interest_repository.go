package repository

import (
	"context"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *domain.Interest) error
	GetByUsers(ctx context.Context, senderID, receiverID string) (*domain.Interest, error)
	UpdateStatus(ctx context.Context, id string, status domain.InterestStatus) error
	// SentReceiverIDs lists ids the sender has expressed interest in.
	SentReceiverIDs(ctx context.Context, senderID string) ([]string, error)
	// AcceptedPartnerIDs lists ids connected to the user through an
	// accepted interest in either direction.
	AcceptedPartnerIDs(ctx context.Context, userID string) ([]string, error)
}

// InterestCache is a read-through cache over the interest id sets the
// enrichment step consumes on every fetch cycle. Implementations must
// degrade silently: a cache miss or outage falls back to the
// repository.
type InterestCache interface {
	SentIDs(ctx context.Context, userID string) ([]string, bool)
	StoreSentIDs(ctx context.Context, userID string, ids []string)
	AddSentID(ctx context.Context, userID, receiverID string)
	AcceptedIDs(ctx context.Context, userID string) ([]string, bool)
	StoreAcceptedIDs(ctx context.Context, userID string, ids []string)
	Invalidate(ctx context.Context, userID string)
}
