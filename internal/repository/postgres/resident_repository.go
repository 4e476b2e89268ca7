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

type residentRepository struct {
	db *sqlx.DB
}

func NewResidentRepository(db *sqlx.DB) repository.ResidentRepository {
	return &residentRepository{db: db}
}

const residentCols = `resident_id, user_id, property_location, rent, description,
	religious_pref, roommate_food_pref, smokes, roommate_smokes_ok, drinks,
	roommate_drinks_ok, cleanliness, roommate_age_pref, roommate_gender_pref,
	environment_pref, curfew_time, works, roommate_night_ok, profession,
	relationship_status, roommate_pets_ok, roommate_cooking_pref,
	roommate_guests_ok, extra_requirements`

func (r *residentRepository) GetByUserID(ctx context.Context, userID int) (*domain.Resident, error) {
	var resident domain.Resident
	query := `SELECT ` + residentCols + ` FROM residents WHERE user_id = $1`
	err := r.db.GetContext(ctx, &resident, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrResidentPrefsMissing
		}
		return nil, err
	}
	return &resident, nil
}

func (r *residentRepository) Upsert(ctx context.Context, resident *domain.Resident) error {
	query := `
		INSERT INTO residents (
			user_id, property_location, rent, description, religious_pref,
			roommate_food_pref, smokes, roommate_smokes_ok, drinks,
			roommate_drinks_ok, cleanliness, roommate_age_pref,
			roommate_gender_pref, environment_pref, curfew_time, works,
			roommate_night_ok, profession, relationship_status,
			roommate_pets_ok, roommate_cooking_pref, roommate_guests_ok,
			extra_requirements
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (user_id) DO UPDATE SET
			property_location = EXCLUDED.property_location,
			rent = EXCLUDED.rent,
			description = EXCLUDED.description,
			religious_pref = EXCLUDED.religious_pref,
			roommate_food_pref = EXCLUDED.roommate_food_pref,
			smokes = EXCLUDED.smokes,
			roommate_smokes_ok = EXCLUDED.roommate_smokes_ok,
			drinks = EXCLUDED.drinks,
			roommate_drinks_ok = EXCLUDED.roommate_drinks_ok,
			cleanliness = EXCLUDED.cleanliness,
			roommate_age_pref = EXCLUDED.roommate_age_pref,
			roommate_gender_pref = EXCLUDED.roommate_gender_pref,
			environment_pref = EXCLUDED.environment_pref,
			curfew_time = EXCLUDED.curfew_time,
			works = EXCLUDED.works,
			roommate_night_ok = EXCLUDED.roommate_night_ok,
			profession = EXCLUDED.profession,
			relationship_status = EXCLUDED.relationship_status,
			roommate_pets_ok = EXCLUDED.roommate_pets_ok,
			roommate_cooking_pref = EXCLUDED.roommate_cooking_pref,
			roommate_guests_ok = EXCLUDED.roommate_guests_ok,
			extra_requirements = EXCLUDED.extra_requirements
		RETURNING resident_id
	`
	return r.db.QueryRowContext(ctx, query,
		resident.UserID, resident.PropertyLocation, resident.Rent,
		resident.Description, resident.ReligiousPref, resident.RoommateFoodPref,
		resident.Smokes, resident.RoommateSmokesOK, resident.Drinks,
		resident.RoommateDrinksOK, resident.Cleanliness, resident.RoommateAgePref,
		resident.RoommateGenderPref, resident.EnvironmentPref, resident.CurfewTime,
		resident.Works, resident.RoommateNightOK, resident.Profession,
		resident.RelationshipStatus, resident.RoommatePetsOK,
		resident.RoommateCookingPref, resident.RoommateGuestsOK,
		resident.ExtraRequirements,
	).Scan(&resident.ID)
}

func (r *residentRepository) ListAll(ctx context.Context, excludeUserID int) ([]*domain.Resident, error) {
	var residents []*domain.Resident
	query := `SELECT ` + residentCols + ` FROM residents WHERE user_id != $1 ORDER BY resident_id`
	err := r.db.SelectContext(ctx, &residents, query, excludeUserID)
	return residents, err
}
