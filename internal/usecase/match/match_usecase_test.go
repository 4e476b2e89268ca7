package match

import (
	"context"
	"testing"

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

type fakeResidentRepo struct {
	byUserID map[int]*domain.Resident
	all      []*domain.Resident
	listed   bool
}

func (r *fakeResidentRepo) GetByUserID(_ context.Context, userID int) (*domain.Resident, error) {
	if res, ok := r.byUserID[userID]; ok {
		return res, nil
	}
	return nil, apperrors.ErrResidentPrefsMissing
}

func (r *fakeResidentRepo) Upsert(_ context.Context, _ *domain.Resident) error { return nil }

func (r *fakeResidentRepo) ListAll(_ context.Context, excludeUserID int) ([]*domain.Resident, error) {
	r.listed = true
	var out []*domain.Resident
	for _, res := range r.all {
		if res.UserID != excludeUserID {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeRoommateRepo struct {
	byUserID map[int]*domain.Roommate
	all      []*domain.Roommate
	listed   bool
}

func (r *fakeRoommateRepo) GetByUserID(_ context.Context, userID int) (*domain.Roommate, error) {
	if rm, ok := r.byUserID[userID]; ok {
		return rm, nil
	}
	return nil, apperrors.ErrRoommatePrefsMissing
}

func (r *fakeRoommateRepo) Upsert(_ context.Context, _ *domain.Roommate) error { return nil }

func (r *fakeRoommateRepo) ListAll(_ context.Context, excludeUserID int) ([]*domain.Roommate, error) {
	r.listed = true
	var out []*domain.Roommate
	for _, rm := range r.all {
		if rm.UserID != excludeUserID {
			out = append(out, rm)
		}
	}
	return out, nil
}

type fakeMatchRepo struct {
	pendingResident []*domain.MatchWithResident
	pendingRoommate []*domain.MatchWithRoommate
	// fill* become visible on the retry read after InsertPending runs,
	// mimicking the lazy-generation round trip.
	fillResident []*domain.MatchWithResident
	fillRoommate []*domain.MatchWithRoommate
	inserted     []*domain.Match
	accepted     []*domain.MutualMatch
	participants map[int]*domain.MatchParticipants
	transitions  []transition
}

type transition struct {
	matchID      int
	to           domain.MatchStatus
	setMatchedOn bool
}

func (r *fakeMatchRepo) InsertPending(_ context.Context, matches []*domain.Match) error {
	r.inserted = append(r.inserted, matches...)
	r.pendingResident = r.fillResident
	r.pendingRoommate = r.fillRoommate
	return nil
}

func (r *fakeMatchRepo) PendingForRoommate(_ context.Context, _ int) ([]*domain.MatchWithResident, error) {
	return r.pendingResident, nil
}

func (r *fakeMatchRepo) PendingForResident(_ context.Context, _ int) ([]*domain.MatchWithRoommate, error) {
	return r.pendingRoommate, nil
}

func (r *fakeMatchRepo) AcceptedForUser(_ context.Context, _ int) ([]*domain.MutualMatch, error) {
	return r.accepted, nil
}

func (r *fakeMatchRepo) All(_ context.Context) ([]*domain.MatchSummary, error) { return nil, nil }

func (r *fakeMatchRepo) GetParticipants(_ context.Context, matchID int) (*domain.MatchParticipants, error) {
	if p, ok := r.participants[matchID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrMatchNotFound
}

func (r *fakeMatchRepo) Transition(_ context.Context, matchID int, to domain.MatchStatus, setMatchedOn bool) error {
	r.transitions = append(r.transitions, transition{matchID: matchID, to: to, setMatchedOn: setMatchedOn})
	return nil
}

type fakeNotifier struct {
	channels []string
	payloads []interface{}
}

func (n *fakeNotifier) Publish(_ context.Context, channel string, payload interface{}) error {
	n.channels = append(n.channels, channel)
	n.payloads = append(n.payloads, payload)
	return nil
}

func intPtr(i int) *int { return &i }

func newFixture() (*MatchUseCase, *fakeResidentRepo, *fakeRoommateRepo, *fakeMatchRepo, *fakeNotifier) {
	residentRepo := &fakeResidentRepo{byUserID: map[int]*domain.Resident{}}
	roommateRepo := &fakeRoommateRepo{byUserID: map[int]*domain.Roommate{}}
	matchRepo := &fakeMatchRepo{participants: map[int]*domain.MatchParticipants{}}
	notifier := &fakeNotifier{}
	resolver := &fakeResolver{ids: map[string]int{"1": 1, "2": 2, "seeker@example.com": 1}}
	uc := NewMatchUseCase(resolver, residentRepo, roommateRepo, matchRepo, notifier)
	return uc, residentRepo, roommateRepo, matchRepo, notifier
}

func TestRoommateMatches_NoProfileIsAdvisoryNotError(t *testing.T) {
	t.Parallel()

	uc, _, _, _, _ := newFixture()

	result, err := uc.RoommateMatches(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Equal(t, "No roommate profile found", result.Message)
}

func TestRoommateMatches_GeneratesOnFirstAccess(t *testing.T) {
	t.Parallel()

	uc, residentRepo, roommateRepo, matchRepo, _ := newFixture()

	seeker := &domain.Roommate{ID: 5, UserID: 1, CurrentLocation: strPtr("Pune")}
	roommateRepo.byUserID[1] = seeker
	residentRepo.all = []*domain.Resident{
		{ID: 10, UserID: 2, PropertyLocation: strPtr("Pune")},
		{ID: 11, UserID: 3},
		{ID: 12, UserID: 1}, // seeker's own listing, must be excluded
	}
	matchRepo.fillResident = []*domain.MatchWithResident{
		{MatchID: 1, CompatibilityScore: 20, Status: domain.MatchPending, Resident: domain.Resident{ID: 10, UserID: 2}},
		{MatchID: 2, CompatibilityScore: 0, Status: domain.MatchPending, Resident: domain.Resident{ID: 11, UserID: 3}},
	}

	result, err := uc.RoommateMatches(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, matchRepo.inserted, 2)
	assert.Equal(t, 10, matchRepo.inserted[0].ResidentID)
	assert.Equal(t, 5, matchRepo.inserted[0].RoommateID)
	assert.Equal(t, 20, matchRepo.inserted[0].CompatibilityScore)
	assert.Equal(t, domain.MatchPending, matchRepo.inserted[0].Status)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, TypeResident, result.Matches[0].Type)
	assert.Equal(t, 2, result.Matches[0].UserID)
	assert.Empty(t, result.Message)
}

func TestRoommateMatches_SkipsGenerationWhenPendingExists(t *testing.T) {
	t.Parallel()

	uc, residentRepo, roommateRepo, matchRepo, _ := newFixture()

	roommateRepo.byUserID[1] = &domain.Roommate{ID: 5, UserID: 1}
	matchRepo.pendingResident = []*domain.MatchWithResident{
		{MatchID: 1, Status: domain.MatchPending, Resident: domain.Resident{ID: 10, UserID: 2}},
	}

	result, err := uc.RoommateMatches(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.False(t, residentRepo.listed)
	assert.Empty(t, matchRepo.inserted)
}

func TestResidentMatches_GeneratesFromRoommatePool(t *testing.T) {
	t.Parallel()

	uc, residentRepo, roommateRepo, matchRepo, _ := newFixture()

	lister := &domain.Resident{ID: 8, UserID: 2, PropertyLocation: strPtr("Delhi")}
	residentRepo.byUserID[2] = lister
	roommateRepo.all = []*domain.Roommate{
		{ID: 21, UserID: 4, CurrentLocation: strPtr("Delhi")},
	}
	matchRepo.fillRoommate = []*domain.MatchWithRoommate{
		{MatchID: 3, CompatibilityScore: 20, Status: domain.MatchPending, Roommate: domain.Roommate{ID: 21, UserID: 4}},
	}

	result, err := uc.ResidentMatches(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, matchRepo.inserted, 1)
	assert.Equal(t, 8, matchRepo.inserted[0].ResidentID)
	assert.Equal(t, 21, matchRepo.inserted[0].RoommateID)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, TypeRoommate, result.Matches[0].Type)
}

func TestMutualMatches_CounterpartOrientation(t *testing.T) {
	t.Parallel()

	uc, _, _, matchRepo, _ := newFixture()
	matchRepo.accepted = []*domain.MutualMatch{
		{
			MatchID:        9,
			Status:         domain.MatchAccepted,
			ResidentID:     8,
			ResidentUserID: 1,
			ResidentName:   "Lister",
			RoommateID:     21,
			RoommateUserID: 4,
			RoommateName:   "Seeker",
		},
	}

	views, err := uc.MutualMatches(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	// Requester owns the resident side, so the counterpart is the roommate.
	assert.Equal(t, TypeRoommate, views[0].Other.Type)
	assert.Equal(t, "Seeker", views[0].Other.Name)
	assert.Equal(t, 4, views[0].Other.UserID)
}

func TestAction_InvalidAction(t *testing.T) {
	t.Parallel()

	uc, _, _, _, _ := newFixture()

	_, err := uc.Action(context.Background(), 1, 9, "maybe")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestAction_MatchNotFound(t *testing.T) {
	t.Parallel()

	uc, _, _, _, _ := newFixture()

	_, err := uc.Action(context.Background(), 1, 404, "accept")
	assert.ErrorIs(t, err, apperrors.ErrMatchNotFound)
}

func TestAction_NonParticipantForbidden(t *testing.T) {
	t.Parallel()

	uc, _, _, matchRepo, _ := newFixture()
	matchRepo.participants[9] = &domain.MatchParticipants{
		MatchID:        9,
		Status:         domain.MatchPending,
		ResidentUserID: intPtr(1),
		RoommateUserID: intPtr(4),
	}

	_, err := uc.Action(context.Background(), 99, 9, "accept")
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)
	assert.Equal(t, 403, apperrors.StatusOf(err))
	assert.Empty(t, matchRepo.transitions)
}

func TestAction_TerminalMatchRejectsReaction(t *testing.T) {
	t.Parallel()

	uc, _, _, matchRepo, _ := newFixture()
	matchRepo.participants[9] = &domain.MatchParticipants{
		MatchID:        9,
		Status:         domain.MatchAccepted,
		ResidentUserID: intPtr(1),
		RoommateUserID: intPtr(4),
	}

	_, err := uc.Action(context.Background(), 1, 9, "reject")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.Empty(t, matchRepo.transitions)
}

func TestAction_AcceptStampsMatchedOnAndNotifies(t *testing.T) {
	t.Parallel()

	uc, _, _, matchRepo, notifier := newFixture()
	matchRepo.participants[9] = &domain.MatchParticipants{
		MatchID:        9,
		Status:         domain.MatchPending,
		ResidentUserID: intPtr(1),
		RoommateUserID: intPtr(4),
	}

	result, err := uc.Action(context.Background(), 4, 9, "accept")
	require.NoError(t, err)
	assert.True(t, result.IsMatch)
	assert.Equal(t, "Match accepted", result.Message)
	assert.Equal(t, 9, result.MatchID)

	require.Len(t, matchRepo.transitions, 1)
	assert.Equal(t, domain.MatchAccepted, matchRepo.transitions[0].to)
	assert.True(t, matchRepo.transitions[0].setMatchedOn)

	require.Len(t, notifier.channels, 1)
	assert.Equal(t, "match_events", notifier.channels[0])
}

func TestAction_RejectDoesNotNotify(t *testing.T) {
	t.Parallel()

	uc, _, _, matchRepo, notifier := newFixture()
	matchRepo.participants[9] = &domain.MatchParticipants{
		MatchID:        9,
		Status:         domain.MatchPending,
		ResidentUserID: intPtr(1),
		RoommateUserID: intPtr(4),
	}

	result, err := uc.Action(context.Background(), 1, 9, "reject")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Equal(t, "Match rejected", result.Message)

	require.Len(t, matchRepo.transitions, 1)
	assert.Equal(t, domain.MatchRejected, matchRepo.transitions[0].to)
	assert.False(t, matchRepo.transitions[0].setMatchedOn)
	assert.Empty(t, notifier.channels)
}
