package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type matchRepository struct {
	db   *sqlx.DB
	caps repository.Capabilities
}

func NewMatchRepository(db *sqlx.DB, caps repository.Capabilities) repository.MatchRepository {
	return &matchRepository{db: db, caps: caps}
}

// emailExpr keeps joined queries valid on schemas without users.email.
func (r *matchRepository) emailExpr(alias, as string) string {
	if r.caps.Email {
		return fmt.Sprintf("%s.email AS %s", alias, as)
	}
	return fmt.Sprintf("NULL::text AS %s", as)
}

func (r *matchRepository) InsertPending(ctx context.Context, matches []*domain.Match) error {
	if len(matches) == 0 {
		return nil
	}
	query := `
		INSERT INTO matches (resident_id, roommate_id, compatibility_score, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (resident_id, roommate_id) DO NOTHING
	`
	for _, m := range matches {
		if _, err := r.db.ExecContext(ctx, query, m.ResidentID, m.RoommateID, m.CompatibilityScore); err != nil {
			return err
		}
	}
	return nil
}

func (r *matchRepository) PendingForRoommate(ctx context.Context, roommateID int) ([]*domain.MatchWithResident, error) {
	var rows []*domain.MatchWithResident
	query := fmt.Sprintf(`
		SELECT m.match_id, m.compatibility_score, m.status, m.matched_on,
			r.resident_id, r.user_id, r.property_location, r.rent, r.description,
			r.religious_pref, r.roommate_food_pref, r.smokes, r.roommate_smokes_ok,
			r.drinks, r.roommate_drinks_ok, r.cleanliness, r.roommate_age_pref,
			r.roommate_gender_pref, r.environment_pref, r.curfew_time, r.works,
			r.roommate_night_ok, r.profession, r.relationship_status,
			r.roommate_pets_ok, r.roommate_cooking_pref, r.roommate_guests_ok,
			r.extra_requirements,
			u.name AS resident_name, %s
		FROM matches m
		JOIN residents r ON m.resident_id = r.resident_id
		JOIN users u ON r.user_id = u.user_id
		WHERE m.roommate_id = $1 AND m.status = 'pending'
		ORDER BY m.compatibility_score DESC, m.match_id ASC
	`, r.emailExpr("u", "resident_email"))
	err := r.db.SelectContext(ctx, &rows, query, roommateID)
	return rows, err
}

func (r *matchRepository) PendingForResident(ctx context.Context, residentID int) ([]*domain.MatchWithRoommate, error) {
	var rows []*domain.MatchWithRoommate
	query := fmt.Sprintf(`
		SELECT m.match_id, m.compatibility_score, m.status, m.matched_on,
			rm.roommate_id, rm.user_id, rm.current_location, rm.cultural_pref,
			rm.food_type, rm.smokes, rm.drinks, rm.dietary_restrictions,
			rm.roommate_smokes_ok, rm.roommate_drinks_ok, rm.roommate_age_pref,
			rm.roommate_gender_pref, rm.environment_pref, rm.curfew_time,
			rm.owns_pets, rm.pet_details, rm.profession, rm.work_study_schedule,
			rm.roommate_night_ok, rm.relationship_status, rm.profession_pref,
			rm.cleanliness, rm.cooking_pref, rm.extra_expectations,
			u.name AS roommate_name, %s
		FROM matches m
		JOIN roommates rm ON m.roommate_id = rm.roommate_id
		JOIN users u ON rm.user_id = u.user_id
		WHERE m.resident_id = $1 AND m.status = 'pending'
		ORDER BY m.compatibility_score DESC, m.match_id ASC
	`, r.emailExpr("u", "roommate_email"))
	err := r.db.SelectContext(ctx, &rows, query, residentID)
	return rows, err
}

func (r *matchRepository) AcceptedForUser(ctx context.Context, userID int) ([]*domain.MutualMatch, error) {
	var rows []*domain.MutualMatch
	query := fmt.Sprintf(`
		SELECT m.match_id, m.matched_on, m.status,
			r.resident_id, r.user_id AS resident_user_id, u1.name AS resident_name, %s,
			rm.roommate_id, rm.user_id AS roommate_user_id, u2.name AS roommate_name, %s
		FROM matches m
		JOIN residents r ON m.resident_id = r.resident_id
		JOIN roommates rm ON m.roommate_id = rm.roommate_id
		JOIN users u1 ON r.user_id = u1.user_id
		JOIN users u2 ON rm.user_id = u2.user_id
		WHERE (r.user_id = $1 OR rm.user_id = $1) AND m.status = 'accepted'
		ORDER BY m.matched_on DESC, m.match_id ASC
	`, r.emailExpr("u1", "resident_email"), r.emailExpr("u2", "roommate_email"))
	err := r.db.SelectContext(ctx, &rows, query, userID)
	return rows, err
}

func (r *matchRepository) All(ctx context.Context) ([]*domain.MatchSummary, error) {
	var rows []*domain.MatchSummary
	query := `
		SELECT m.match_id, m.compatibility_score, m.status, m.matched_on,
			r.resident_id, rm.roommate_id,
			u1.name AS resident_name, u2.name AS roommate_name
		FROM matches m
		JOIN residents r ON m.resident_id = r.resident_id
		JOIN roommates rm ON m.roommate_id = rm.roommate_id
		JOIN users u1 ON r.user_id = u1.user_id
		JOIN users u2 ON rm.user_id = u2.user_id
		ORDER BY m.compatibility_score DESC, m.match_id ASC
	`
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *matchRepository) GetParticipants(ctx context.Context, matchID int) (*domain.MatchParticipants, error) {
	var row domain.MatchParticipants
	query := `
		SELECT m.match_id, m.resident_id, m.roommate_id, m.status,
			r.user_id AS resident_user_id, rm.user_id AS roommate_user_id
		FROM matches m
		LEFT JOIN residents r ON m.resident_id = r.resident_id
		LEFT JOIN roommates rm ON m.roommate_id = rm.roommate_id
		WHERE m.match_id = $1
	`
	err := r.db.GetContext(ctx, &row, query, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *matchRepository) Transition(ctx context.Context, matchID int, to domain.MatchStatus, setMatchedOn bool) error {
	query := `
		UPDATE matches
		SET status = $2,
			matched_on = CASE WHEN $3::boolean THEN NOW() ELSE matched_on END
		WHERE match_id = $1 AND status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, matchID, to, setMatchedOn)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}
