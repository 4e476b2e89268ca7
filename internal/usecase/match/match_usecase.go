// Package match owns scoring, lazy candidate generation and the match
// lifecycle state machine.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/infrastructure/notify"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/identity"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type MatchUseCase struct {
	identity     identity.Resolver
	residentRepo repository.ResidentRepository
	roommateRepo repository.RoommateRepository
	matchRepo    repository.MatchRepository
	notifier     notify.Notifier
}

func NewMatchUseCase(
	resolver identity.Resolver,
	residentRepo repository.ResidentRepository,
	roommateRepo repository.RoommateRepository,
	matchRepo repository.MatchRepository,
	notifier notify.Notifier,
) *MatchUseCase {
	return &MatchUseCase{
		identity:     resolver,
		residentRepo: residentRepo,
		roommateRepo: roommateRepo,
		matchRepo:    matchRepo,
		notifier:     notifier,
	}
}

// RoommateMatches returns pending candidates for the user's roommate
// profile, generating the candidate set on first access. A user without a
// roommate profile gets an empty list with an advisory message, not an
// error.
func (uc *MatchUseCase) RoommateMatches(ctx context.Context, identifier string) (*ListResult, error) {
	userID, err := uc.identity.GetOrCreate(ctx, identifier)
	if err != nil {
		return nil, err
	}

	roommate, err := uc.roommateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoommatePrefsMissing) {
			return &ListResult{Matches: []*MatchView{}, Message: "No roommate profile found"}, nil
		}
		return nil, err
	}

	rows, err := uc.matchRepo.PendingForRoommate(ctx, roommate.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if genErr := uc.generateForRoommate(ctx, roommate); genErr != nil {
			// Generation is opportunistic; serving stale (possibly empty)
			// results beats failing the read.
			slog.Error("match generation failed", "roommate_id", roommate.ID, "error", genErr)
		}
		rows, err = uc.matchRepo.PendingForRoommate(ctx, roommate.ID)
		if err != nil {
			return nil, err
		}
	}

	views := make([]*MatchView, 0, len(rows))
	for _, row := range rows {
		views = append(views, viewFromResidentRow(row))
	}
	return &ListResult{Matches: views}, nil
}

// ResidentMatches mirrors RoommateMatches for the listing side.
func (uc *MatchUseCase) ResidentMatches(ctx context.Context, identifier string) (*ListResult, error) {
	userID, err := uc.identity.GetOrCreate(ctx, identifier)
	if err != nil {
		return nil, err
	}

	resident, err := uc.residentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResidentPrefsMissing) {
			return &ListResult{Matches: []*MatchView{}, Message: "No resident profile found"}, nil
		}
		return nil, err
	}

	rows, err := uc.matchRepo.PendingForResident(ctx, resident.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if genErr := uc.generateForResident(ctx, resident); genErr != nil {
			slog.Error("match generation failed", "resident_id", resident.ID, "error", genErr)
		}
		rows, err = uc.matchRepo.PendingForResident(ctx, resident.ID)
		if err != nil {
			return nil, err
		}
	}

	views := make([]*MatchView, 0, len(rows))
	for _, row := range rows {
		views = append(views, viewFromRoommateRow(row))
	}
	return &ListResult{Matches: views}, nil
}

// MutualMatches returns every accepted match touching either of the user's
// profiles, counterpart info resolved relative to the requesting user.
func (uc *MatchUseCase) MutualMatches(ctx context.Context, identifier string) ([]*MutualMatchView, error) {
	userID, err := uc.identity.GetOrCreate(ctx, identifier)
	if err != nil {
		return nil, err
	}

	rows, err := uc.matchRepo.AcceptedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*MutualMatchView, 0, len(rows))
	for _, row := range rows {
		views = append(views, mutualView(row, userID))
	}
	return views, nil
}

// All lists every match row for the admin surface.
func (uc *MatchUseCase) All(ctx context.Context) ([]*domain.MatchSummary, error) {
	return uc.matchRepo.All(ctx)
}

// Action applies accept/reject on behalf of userID. Only a participant may
// act, only pending matches transition, and accept stamps matched_on.
func (uc *MatchUseCase) Action(ctx context.Context, userID, matchID int, action string) (*ActionResult, error) {
	act := domain.MatchAction(action)
	if !act.Valid() {
		return nil, apperrors.ErrInvalidAction
	}

	participants, err := uc.matchRepo.GetParticipants(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !participants.HasParticipant(userID) {
		return nil, apperrors.ErrNotParticipant
	}
	if participants.Status.Terminal() {
		return nil, apperrors.InvalidArg(fmt.Sprintf("Match already %s", participants.Status))
	}

	switch act {
	case domain.ActionAccept:
		if err := uc.matchRepo.Transition(ctx, matchID, domain.MatchAccepted, true); err != nil {
			return nil, err
		}
		uc.notifyAccepted(ctx, matchID, participants)
		return &ActionResult{Message: "Match accepted", IsMatch: true, MatchID: matchID}, nil
	default:
		if err := uc.matchRepo.Transition(ctx, matchID, domain.MatchRejected, false); err != nil {
			return nil, err
		}
		return &ActionResult{Message: "Match rejected", IsMatch: false, MatchID: matchID}, nil
	}
}

func (uc *MatchUseCase) notifyAccepted(ctx context.Context, matchID int, participants *domain.MatchParticipants) {
	payload := map[string]interface{}{
		"matchId": matchID,
		"status":  domain.MatchAccepted,
	}
	if participants.ResidentUserID != nil {
		payload["residentUserId"] = *participants.ResidentUserID
	}
	if participants.RoommateUserID != nil {
		payload["roommateUserId"] = *participants.RoommateUserID
	}
	if err := uc.notifier.Publish(ctx, notify.MatchEventsChannel, payload); err != nil {
		slog.Warn("match event publish failed", "match_id", matchID, "error", err)
	}
}

// generateForRoommate scores the roommate against every resident profile and
// bulk-inserts the pairs. The unique (resident_id, roommate_id) constraint
// makes concurrent generation converge on one row per pair.
func (uc *MatchUseCase) generateForRoommate(ctx context.Context, roommate *domain.Roommate) error {
	residents, err := uc.residentRepo.ListAll(ctx, roommate.UserID)
	if err != nil {
		return err
	}
	if len(residents) == 0 {
		return nil
	}

	matches := make([]*domain.Match, 0, len(residents))
	for _, resident := range residents {
		matches = append(matches, &domain.Match{
			ResidentID:         resident.ID,
			RoommateID:         roommate.ID,
			CompatibilityScore: Score(resident, roommate),
			Status:             domain.MatchPending,
		})
	}

	if err := uc.matchRepo.InsertPending(ctx, matches); err != nil {
		return err
	}
	slog.Info("generated candidate matches", "roommate_id", roommate.ID, "candidates", len(matches))
	return nil
}

func (uc *MatchUseCase) generateForResident(ctx context.Context, resident *domain.Resident) error {
	roommates, err := uc.roommateRepo.ListAll(ctx, resident.UserID)
	if err != nil {
		return err
	}
	if len(roommates) == 0 {
		return nil
	}

	matches := make([]*domain.Match, 0, len(roommates))
	for _, roommate := range roommates {
		matches = append(matches, &domain.Match{
			ResidentID:         resident.ID,
			RoommateID:         roommate.ID,
			CompatibilityScore: Score(resident, roommate),
			Status:             domain.MatchPending,
		})
	}

	if err := uc.matchRepo.InsertPending(ctx, matches); err != nil {
		return err
	}
	slog.Info("generated candidate matches", "resident_id", resident.ID, "candidates", len(matches))
	return nil
}
