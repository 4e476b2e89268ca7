package domain

import "time"

// ChatRoom pairs two users. Rows always store the lower user id first so the
// pair key is canonical; the table backs that with a CHECK and a unique
// constraint.
type ChatRoom struct {
	ID        int       `json:"chat_room_id" db:"chat_room_id"`
	User1ID   int       `json:"user1_id" db:"user1_id"`
	User2ID   int       `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (r *ChatRoom) HasUser(userID int) bool {
	return r.User1ID == userID || r.User2ID == userID
}

// ChatRoomView is a room row joined with participant names, shaped from the
// perspective of the requesting user.
type ChatRoomView struct {
	ID            int       `json:"chat_room_id" db:"chat_room_id"`
	User1ID       int       `json:"user1_id" db:"user1_id"`
	User2ID       int       `json:"user2_id" db:"user2_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	User1Name     string    `json:"user1_name" db:"user1_name"`
	User2Name     string    `json:"user2_name" db:"user2_name"`
	OtherUserID   int       `json:"other_user_id" db:"other_user_id"`
	OtherUserName string    `json:"other_user_name" db:"other_user_name"`
}

// Message is append-only, ordered by creation time.
type Message struct {
	ID        int       `json:"message_id" db:"message_id"`
	RoomID    int       `json:"chat_room_id" db:"chat_room_id"`
	SenderID  int       `json:"sender_id" db:"sender_id"`
	Text      string    `json:"message_text" db:"message_text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MessageWithSender adds the sender's display name for listings and
// realtime payloads.
type MessageWithSender struct {
	Message
	SenderName *string `json:"sender_name" db:"sender_name"`
}
