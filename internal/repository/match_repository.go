package repository

import (
	"context"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

type MatchRepository interface {
	// InsertPending bulk-inserts candidate matches with ON CONFLICT DO
	// NOTHING on (resident_id, roommate_id); re-invocation is idempotent.
	InsertPending(ctx context.Context, matches []*domain.Match) error
	PendingForRoommate(ctx context.Context, roommateID int) ([]*domain.MatchWithResident, error)
	PendingForResident(ctx context.Context, residentID int) ([]*domain.MatchWithRoommate, error)
	AcceptedForUser(ctx context.Context, userID int) ([]*domain.MutualMatch, error)
	All(ctx context.Context) ([]*domain.MatchSummary, error)
	GetParticipants(ctx context.Context, matchID int) (*domain.MatchParticipants, error)
	// Transition moves a pending match to a terminal status; the UPDATE is
	// guarded on status='pending' so a lost race surfaces as not-found.
	Transition(ctx context.Context, matchID int, to domain.MatchStatus, setMatchedOn bool) error
}
