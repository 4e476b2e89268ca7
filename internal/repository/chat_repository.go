package repository

import (
	"context"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

type ChatRepository interface {
	// GetOrCreateRoom upserts the room for an ordered user pair
	// (user1ID < user2ID) and returns the surviving row either way;
	// created reports whether this call inserted it.
	GetOrCreateRoom(ctx context.Context, user1ID, user2ID int) (room *domain.ChatRoom, created bool, err error)
	GetRoom(ctx context.Context, roomID int) (*domain.ChatRoom, error)
	RoomsForUser(ctx context.Context, userID int) ([]*domain.ChatRoomView, error)
	InsertMessage(ctx context.Context, message *domain.Message) error
	MessagesForRoom(ctx context.Context, roomID int) ([]*domain.MessageWithSender, error)
}
