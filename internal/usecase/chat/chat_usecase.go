// Package chat implements room lifecycle, message history and best-effort
// realtime fan-out. Every method is gated on the chat capability probed at
// startup: deployments without the chat tables get a clear "unavailable"
// instead of SQL errors.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/infrastructure/notify"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/identity"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	userRepo  repository.UserRepository
	identity  identity.Resolver
	notifier  notify.Notifier
	available bool
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	resolver identity.Resolver,
	notifier notify.Notifier,
	available bool,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		identity:  resolver,
		notifier:  notifier,
		available: available,
	}
}

// GetOrCreateRoom resolves both identifiers (creating placeholder users for
// unknown ones) and returns the canonical room for the pair. The pair is
// stored lower-id-first so A->B and B->A land on the same row.
func (uc *ChatUseCase) GetOrCreateRoom(ctx context.Context, userIdentifier, otherIdentifier string) (*domain.ChatRoom, error) {
	if !uc.available {
		return nil, apperrors.ErrChatUnavailable
	}

	userID, err := uc.identity.GetOrCreate(ctx, userIdentifier)
	if err != nil {
		return nil, err
	}
	otherID, err := uc.identity.GetOrCreate(ctx, otherIdentifier)
	if err != nil {
		return nil, err
	}
	if userID == otherID {
		return nil, apperrors.InvalidArg("Cannot create a chat room with yourself")
	}

	user1, user2 := userID, otherID
	if user1 > user2 {
		user1, user2 = user2, user1
	}

	room, created, err := uc.chatRepo.GetOrCreateRoom(ctx, user1, user2)
	if err != nil {
		return nil, err
	}
	if created {
		event := map[string]interface{}{
			"event":  "room_created",
			"roomId": room.ID,
			"users":  []int{room.User1ID, room.User2ID},
		}
		if err := uc.notifier.Publish(ctx, notify.ChatChannel(room.ID), event); err != nil {
			slog.Warn("room_created publish failed", "room_id", room.ID, "error", err)
		}
	}
	return room, nil
}

// RoomsForUser lists the user's rooms with counterpart names resolved.
func (uc *ChatUseCase) RoomsForUser(ctx context.Context, identifier string) ([]*domain.ChatRoomView, error) {
	if !uc.available {
		return nil, apperrors.ErrChatUnavailable
	}

	userID, err := uc.identity.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return uc.chatRepo.RoomsForUser(ctx, userID)
}

// Messages returns the full ordered history of a room the user belongs to.
func (uc *ChatUseCase) Messages(ctx context.Context, roomID, userID int) ([]*domain.MessageWithSender, error) {
	if !uc.available {
		return nil, apperrors.ErrChatUnavailable
	}

	room, err := uc.chatRepo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasUser(userID) {
		return nil, apperrors.ErrRoomAccessDenied
	}
	return uc.chatRepo.MessagesForRoom(ctx, roomID)
}

// Send appends a message and fans it out on the room channel. Fan-out is
// best-effort: a publish failure is logged, never surfaced.
func (uc *ChatUseCase) Send(ctx context.Context, roomID, senderID int, text string) (*domain.MessageWithSender, error) {
	if !uc.available {
		return nil, apperrors.ErrChatUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.InvalidArg("Message text is required")
	}

	room, err := uc.chatRepo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasUser(senderID) {
		return nil, apperrors.ErrRoomAccessDenied
	}

	message := &domain.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Text:     text,
	}
	if err := uc.chatRepo.InsertMessage(ctx, message); err != nil {
		return nil, err
	}

	out := &domain.MessageWithSender{Message: *message}
	if sender, lookupErr := uc.userRepo.GetByID(ctx, senderID); lookupErr == nil {
		out.SenderName = &sender.Name
	}

	if err := uc.notifier.Publish(ctx, notify.ChatChannel(roomID), out); err != nil {
		slog.Warn("message publish failed", "room_id", roomID, "error", err)
	}

	return out, nil
}
