package repository

import (
	"context"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id string) error
	// List returns browsable candidates in creation order, newest
	// first.
	List(ctx context.Context, limit, offset int) ([]*domain.Profile, error)
	// Search performs the server-side free-text search the local
	// pipeline delegates to when a query is active.
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.Profile, error)
	TouchLastActive(ctx context.Context, id string) error
}
