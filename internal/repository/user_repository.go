package repository

import (
	"context"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error)
	// CreatePlaceholder inserts a synthesized user row conflict-tolerantly.
	// When a concurrent insert already claimed the identity column it returns
	// pkg/errors CodeAlreadyExists and the caller re-resolves.
	CreatePlaceholder(ctx context.Context, user *domain.User) error
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context, limit int) ([]*domain.User, error)
}
