package chat

import (
	"context"
	"testing"
	"time"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	ids map[string]int
}

func (r *fakeResolver) Resolve(_ context.Context, identifier string) (int, error) {
	if id, ok := r.ids[identifier]; ok {
		return id, nil
	}
	return 0, apperrors.ErrUserNotFound
}

func (r *fakeResolver) GetOrCreate(ctx context.Context, identifier string) (int, error) {
	return r.Resolve(ctx, identifier)
}

type fakeChatRepo struct {
	rooms     map[int]*domain.ChatRoom
	nextRoom  int
	messages  []*domain.Message
	nextMsgID int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{rooms: map[int]*domain.ChatRoom{}, nextRoom: 0, nextMsgID: 0}
}

func (r *fakeChatRepo) GetOrCreateRoom(_ context.Context, user1ID, user2ID int) (*domain.ChatRoom, bool, error) {
	for _, room := range r.rooms {
		if room.User1ID == user1ID && room.User2ID == user2ID {
			return room, false, nil
		}
	}
	r.nextRoom++
	room := &domain.ChatRoom{ID: r.nextRoom, User1ID: user1ID, User2ID: user2ID, CreatedAt: time.Now()}
	r.rooms[room.ID] = room
	return room, true, nil
}

func (r *fakeChatRepo) mustRoom(t *testing.T, user1ID, user2ID int) *domain.ChatRoom {
	t.Helper()
	room, _, err := r.GetOrCreateRoom(context.Background(), user1ID, user2ID)
	require.NoError(t, err)
	return room
}

func (r *fakeChatRepo) GetRoom(_ context.Context, roomID int) (*domain.ChatRoom, error) {
	if room, ok := r.rooms[roomID]; ok {
		return room, nil
	}
	return nil, apperrors.ErrRoomNotFound
}

func (r *fakeChatRepo) RoomsForUser(_ context.Context, userID int) ([]*domain.ChatRoomView, error) {
	var out []*domain.ChatRoomView
	for _, room := range r.rooms {
		if room.HasUser(userID) {
			out = append(out, &domain.ChatRoomView{ID: room.ID, User1ID: room.User1ID, User2ID: room.User2ID})
		}
	}
	return out, nil
}

func (r *fakeChatRepo) InsertMessage(_ context.Context, message *domain.Message) error {
	r.nextMsgID++
	message.ID = r.nextMsgID
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) MessagesForRoom(_ context.Context, roomID int) ([]*domain.MessageWithSender, error) {
	var out []*domain.MessageWithSender
	for _, m := range r.messages {
		if m.RoomID == roomID {
			out = append(out, &domain.MessageWithSender{Message: *m})
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	names map[int]string
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	if name, ok := r.names[id]; ok {
		return &domain.User{ID: id, Name: name}, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByFirebaseUID(_ context.Context, _ string) (*domain.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) CreatePlaceholder(_ context.Context, _ *domain.User) error { return nil }
func (r *fakeUserRepo) Create(_ context.Context, _ *domain.User) error            { return nil }
func (r *fakeUserRepo) List(_ context.Context, _ int) ([]*domain.User, error)     { return nil, nil }

type fakeNotifier struct {
	channels []string
	payloads []interface{}
}

func (n *fakeNotifier) Publish(_ context.Context, channel string, payload interface{}) error {
	n.channels = append(n.channels, channel)
	n.payloads = append(n.payloads, payload)
	return nil
}

func newFixture(available bool) (*ChatUseCase, *fakeChatRepo, *fakeNotifier) {
	chatRepo := newFakeChatRepo()
	notifier := &fakeNotifier{}
	resolver := &fakeResolver{ids: map[string]int{"2": 2, "10": 10, "a@example.com": 10}}
	userRepo := &fakeUserRepo{names: map[int]string{2: "Two", 10: "Ten"}}
	uc := NewChatUseCase(chatRepo, userRepo, resolver, notifier, available)
	return uc, chatRepo, notifier
}

func TestChatUnavailable_AllOperations(t *testing.T) {
	t.Parallel()

	uc, _, _ := newFixture(false)
	ctx := context.Background()

	_, err := uc.GetOrCreateRoom(ctx, "2", "10")
	assert.ErrorIs(t, err, apperrors.ErrChatUnavailable)
	assert.Equal(t, 501, apperrors.StatusOf(err))

	_, err = uc.RoomsForUser(ctx, "2")
	assert.ErrorIs(t, err, apperrors.ErrChatUnavailable)

	_, err = uc.Messages(ctx, 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrChatUnavailable)

	_, err = uc.Send(ctx, 1, 2, "hi")
	assert.ErrorIs(t, err, apperrors.ErrChatUnavailable)
}

func TestGetOrCreateRoom_CanonicalPairOrdering(t *testing.T) {
	t.Parallel()

	uc, _, notifier := newFixture(true)

	first, err := uc.GetOrCreateRoom(context.Background(), "10", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, first.User1ID)
	assert.Equal(t, 10, first.User2ID)

	// Creation announces the room once.
	require.Len(t, notifier.channels, 1)
	assert.Equal(t, "chat_1", notifier.channels[0])

	// Asking from the other direction lands on the same room, silently.
	second, err := uc.GetOrCreateRoom(context.Background(), "2", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, notifier.channels, 1)
}

func TestGetOrCreateRoom_SelfRejected(t *testing.T) {
	t.Parallel()

	uc, _, _ := newFixture(true)

	_, err := uc.GetOrCreateRoom(context.Background(), "2", "2")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestMessages_NonParticipantDenied(t *testing.T) {
	t.Parallel()

	uc, chatRepo, _ := newFixture(true)
	room := chatRepo.mustRoom(t, 2, 10)

	_, err := uc.Messages(context.Background(), room.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrRoomAccessDenied)
	assert.Equal(t, 403, apperrors.StatusOf(err))
}

func TestSend_PersistsAndFansOut(t *testing.T) {
	t.Parallel()

	uc, chatRepo, notifier := newFixture(true)
	room := chatRepo.mustRoom(t, 2, 10)

	message, err := uc.Send(context.Background(), room.ID, 2, "hello there")
	require.NoError(t, err)
	assert.Equal(t, "hello there", message.Text)
	require.NotNil(t, message.SenderName)
	assert.Equal(t, "Two", *message.SenderName)

	require.Len(t, chatRepo.messages, 1)
	require.Len(t, notifier.channels, 1)
	assert.Equal(t, "chat_1", notifier.channels[0])

	history, err := uc.Messages(context.Background(), room.ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSend_RejectsBlankText(t *testing.T) {
	t.Parallel()

	uc, chatRepo, notifier := newFixture(true)
	room := chatRepo.mustRoom(t, 2, 10)

	_, err := uc.Send(context.Background(), room.ID, 2, "   ")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.Empty(t, chatRepo.messages)
	assert.Empty(t, notifier.channels)
}

func TestSend_UnknownRoom(t *testing.T) {
	t.Parallel()

	uc, _, _ := newFixture(true)

	_, err := uc.Send(context.Background(), 123, 2, "hello")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}
