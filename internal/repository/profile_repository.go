package repository

import (
	"context"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

type ResidentRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Resident, error)
	// Upsert writes the full preference record keyed by user_id.
	Upsert(ctx context.Context, resident *domain.Resident) error
	// ListAll returns every resident profile except ones owned by
	// excludeUserID (a user never matches with themselves).
	ListAll(ctx context.Context, excludeUserID int) ([]*domain.Resident, error)
}

type RoommateRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Roommate, error)
	Upsert(ctx context.Context, roommate *domain.Roommate) error
	ListAll(ctx context.Context, excludeUserID int) ([]*domain.Roommate, error)
}
