package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type chatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetOrCreateRoom(ctx context.Context, user1ID, user2ID int) (*domain.ChatRoom, bool, error) {
	// Caller orders the pair; the CHECK constraint backs it up.
	var room domain.ChatRoom
	insert := `
		INSERT INTO chat_rooms (user1_id, user2_id)
		VALUES ($1, $2)
		ON CONFLICT (user1_id, user2_id) DO NOTHING
		RETURNING chat_room_id, user1_id, user2_id, created_at
	`
	err := r.db.GetContext(ctx, &room, insert, user1ID, user2ID)
	if err == nil {
		return &room, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	// Lost the upsert race or the room predates this call; fetch it.
	query := `
		SELECT chat_room_id, user1_id, user2_id, created_at
		FROM chat_rooms WHERE user1_id = $1 AND user2_id = $2
	`
	if err := r.db.GetContext(ctx, &room, query, user1ID, user2ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, apperrors.ErrRoomNotFound
		}
		return nil, false, err
	}
	return &room, false, nil
}

func (r *chatRepository) GetRoom(ctx context.Context, roomID int) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	query := `SELECT chat_room_id, user1_id, user2_id, created_at FROM chat_rooms WHERE chat_room_id = $1`
	err := r.db.GetContext(ctx, &room, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *chatRepository) RoomsForUser(ctx context.Context, userID int) ([]*domain.ChatRoomView, error) {
	var rooms []*domain.ChatRoomView
	query := `
		SELECT cr.chat_room_id, cr.user1_id, cr.user2_id, cr.created_at,
			u1.name AS user1_name, u2.name AS user2_name,
			CASE WHEN cr.user1_id = $1 THEN u2.name ELSE u1.name END AS other_user_name,
			CASE WHEN cr.user1_id = $1 THEN cr.user2_id ELSE cr.user1_id END AS other_user_id
		FROM chat_rooms cr
		JOIN users u1 ON cr.user1_id = u1.user_id
		JOIN users u2 ON cr.user2_id = u2.user_id
		WHERE cr.user1_id = $1 OR cr.user2_id = $1
		ORDER BY cr.created_at DESC
	`
	err := r.db.SelectContext(ctx, &rooms, query, userID)
	return rooms, err
}

func (r *chatRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (chat_room_id, sender_id, message_text)
		VALUES ($1, $2, $3)
		RETURNING message_id, created_at
	`
	return r.db.QueryRowContext(ctx, query, message.RoomID, message.SenderID, message.Text).
		Scan(&message.ID, &message.CreatedAt)
}

func (r *chatRepository) MessagesForRoom(ctx context.Context, roomID int) ([]*domain.MessageWithSender, error) {
	var messages []*domain.MessageWithSender
	query := `
		SELECT m.message_id, m.chat_room_id, m.sender_id, m.message_text, m.created_at,
			u.name AS sender_name
		FROM messages m
		JOIN users u ON m.sender_id = u.user_id
		WHERE m.chat_room_id = $1
		ORDER BY m.created_at ASC, m.message_id ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, roomID)
	return messages, err
}
