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

type roommateRepository struct {
	db *sqlx.DB
}

func NewRoommateRepository(db *sqlx.DB) repository.RoommateRepository {
	return &roommateRepository{db: db}
}

const roommateCols = `roommate_id, user_id, current_location, cultural_pref,
	food_type, smokes, drinks, dietary_restrictions, roommate_smokes_ok,
	roommate_drinks_ok, roommate_age_pref, roommate_gender_pref,
	environment_pref, curfew_time, owns_pets, pet_details, profession,
	work_study_schedule, roommate_night_ok, relationship_status,
	profession_pref, cleanliness, cooking_pref, extra_expectations`

func (r *roommateRepository) GetByUserID(ctx context.Context, userID int) (*domain.Roommate, error) {
	var roommate domain.Roommate
	query := `SELECT ` + roommateCols + ` FROM roommates WHERE user_id = $1`
	err := r.db.GetContext(ctx, &roommate, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoommatePrefsMissing
		}
		return nil, err
	}
	return &roommate, nil
}

func (r *roommateRepository) Upsert(ctx context.Context, roommate *domain.Roommate) error {
	query := `
		INSERT INTO roommates (
			user_id, current_location, cultural_pref, food_type, smokes,
			drinks, dietary_restrictions, roommate_smokes_ok,
			roommate_drinks_ok, roommate_age_pref, roommate_gender_pref,
			environment_pref, curfew_time, owns_pets, pet_details, profession,
			work_study_schedule, roommate_night_ok, relationship_status,
			profession_pref, cleanliness, cooking_pref, extra_expectations
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (user_id) DO UPDATE SET
			current_location = EXCLUDED.current_location,
			cultural_pref = EXCLUDED.cultural_pref,
			food_type = EXCLUDED.food_type,
			smokes = EXCLUDED.smokes,
			drinks = EXCLUDED.drinks,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			roommate_smokes_ok = EXCLUDED.roommate_smokes_ok,
			roommate_drinks_ok = EXCLUDED.roommate_drinks_ok,
			roommate_age_pref = EXCLUDED.roommate_age_pref,
			roommate_gender_pref = EXCLUDED.roommate_gender_pref,
			environment_pref = EXCLUDED.environment_pref,
			curfew_time = EXCLUDED.curfew_time,
			owns_pets = EXCLUDED.owns_pets,
			pet_details = EXCLUDED.pet_details,
			profession = EXCLUDED.profession,
			work_study_schedule = EXCLUDED.work_study_schedule,
			roommate_night_ok = EXCLUDED.roommate_night_ok,
			relationship_status = EXCLUDED.relationship_status,
			profession_pref = EXCLUDED.profession_pref,
			cleanliness = EXCLUDED.cleanliness,
			cooking_pref = EXCLUDED.cooking_pref,
			extra_expectations = EXCLUDED.extra_expectations
		RETURNING roommate_id
	`
	return r.db.QueryRowContext(ctx, query,
		roommate.UserID, roommate.CurrentLocation, roommate.CulturalPref,
		roommate.FoodType, roommate.Smokes, roommate.Drinks,
		roommate.DietaryRestrictions, roommate.RoommateSmokesOK,
		roommate.RoommateDrinksOK, roommate.RoommateAgePref,
		roommate.RoommateGenderPref, roommate.EnvironmentPref,
		roommate.CurfewTime, roommate.OwnsPets, roommate.PetDetails,
		roommate.Profession, roommate.WorkStudySchedule,
		roommate.RoommateNightOK, roommate.RelationshipStatus,
		roommate.ProfessionPref, roommate.Cleanliness, roommate.CookingPref,
		roommate.ExtraExpectations,
	).Scan(&roommate.ID)
}

func (r *roommateRepository) ListAll(ctx context.Context, excludeUserID int) ([]*domain.Roommate, error) {
	var roommates []*domain.Roommate
	query := `SELECT ` + roommateCols + ` FROM roommates WHERE user_id != $1 ORDER BY roommate_id`
	err := r.db.SelectContext(ctx, &roommates, query, excludeUserID)
	return roommates, err
}
