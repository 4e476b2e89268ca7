// Package preference stores and serves both sides' survey records. Writes
// normalize enumerated answers into closed vocabularies so the scorer can
// compare values with plain equality.
package preference

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/identity"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type PreferenceUseCase struct {
	identity     identity.Resolver
	residentRepo repository.ResidentRepository
	roommateRepo repository.RoommateRepository
	validate     *validator.Validate
}

func NewPreferenceUseCase(
	resolver identity.Resolver,
	residentRepo repository.ResidentRepository,
	roommateRepo repository.RoommateRepository,
) *PreferenceUseCase {
	return &PreferenceUseCase{
		identity:     resolver,
		residentRepo: residentRepo,
		roommateRepo: roommateRepo,
		validate:     validator.New(),
	}
}

// SaveRoommate upserts the seeker-side record for the identified user,
// creating a placeholder user when the identifier is unknown. Returns the
// canonical user id the record landed on.
func (uc *PreferenceUseCase) SaveRoommate(ctx context.Context, identifier string, req *RoommatePreferencesRequest) (int, error) {
	if err := uc.validate.Struct(req); err != nil {
		return 0, apperrors.InvalidArg(err.Error())
	}

	userID, err := uc.identity.GetOrCreate(ctx, identifier)
	if err != nil {
		return 0, err
	}

	roommate := &domain.Roommate{
		UserID:              userID,
		CurrentLocation:     orNil(req.CurrentLocation),
		CulturalPref:        orNil(req.ReligiousPreferences),
		FoodType:            normalizeEnum(req.DietaryPreference, "vegetarian", "non-vegetarian", "vegan", "other"),
		Smokes:              req.Smokes.Ptr(),
		Drinks:              req.Drinks.Ptr(),
		DietaryRestrictions: orNil(req.DietaryRestrictions),
		RoommateSmokesOK:    req.ComfortableWithSmokingOrDrinking.Ptr(),
		RoommateDrinksOK:    req.ComfortableWithSmokingOrDrinking.Ptr(),
		RoommateAgePref:     orNil(req.AgeGroupPreference),
		RoommateGenderPref:  orNil(req.GenderPreference),
		EnvironmentPref:     normalizeEnum(req.EnvironmentPreference, "quiet", "social", "party-friendly", "no preference"),
		CurfewTime:          orNil(req.CurfewTimings),
		OwnsPets:            boolPtr(req.Pets != nil && *req.Pets != ""),
		PetDetails:          orNil(req.Pets),
		Profession:          orNil(req.Profession),
		WorkStudySchedule:   normalizeEnum(req.Schedule, "day shift", "night shift", "flexible"),
		RoommateNightOK:     req.OkayWithIrregularSchedule.Ptr(),
		RelationshipStatus:  normalizeEnum(req.RelationshipStatus, "single", "married", "relationship"),
		ProfessionPref:      normalizeEnum(req.BackgroundPreference, "student", "professional", "flexible"),
		Cleanliness:         normalizeEnum(req.CleanlinessHabits, "messy", "moderate", "neat"),
		CookingPref:         normalizeEnum(req.CookingPreference, "home", "outside", "no preference"),
		ExtraExpectations:   orNil(req.ExtraExpectations),
	}

	if err := uc.roommateRepo.Upsert(ctx, roommate); err != nil {
		return 0, err
	}
	return userID, nil
}

// SaveResident upserts the lister-side record.
func (uc *PreferenceUseCase) SaveResident(ctx context.Context, identifier string, req *ResidentPreferencesRequest) (int, error) {
	if err := uc.validate.Struct(req); err != nil {
		return 0, apperrors.InvalidArg(err.Error())
	}

	userID, err := uc.identity.GetOrCreate(ctx, identifier)
	if err != nil {
		return 0, err
	}

	resident := &domain.Resident{
		UserID:              userID,
		PropertyLocation:    orNil(req.PropertyLocation),
		Rent:                req.Rent,
		Description:         orNil(req.Description),
		ReligiousPref:       orNil(req.ReligiousPref),
		RoommateFoodPref:    normalizeEnum(req.RoommateFoodPref, "vegetarian", "non-vegetarian", "vegan", "flexible"),
		Smokes:              req.Smokes.Ptr(),
		RoommateSmokesOK:    req.RoommateSmokesOK.Ptr(),
		Drinks:              req.Drinks.Ptr(),
		RoommateDrinksOK:    req.RoommateDrinksOK.Ptr(),
		Cleanliness:         normalizeEnum(req.Cleanliness, "neat", "moderate", "messy"),
		RoommateAgePref:     orNil(req.RoommateAgePref),
		RoommateGenderPref:  orNil(req.RoommateGenderPref),
		EnvironmentPref:     normalizeEnum(req.EnvironmentPref, "quiet", "social", "party-friendly", "no preference"),
		CurfewTime:          orNil(req.CurfewTime),
		Works:               req.Works,
		RoommateNightOK:     req.RoommateNightOK.Ptr(),
		Profession:          orNil(req.Profession),
		RelationshipStatus:  normalizeEnum(req.RelationshipStatus, "single", "married", "relationship"),
		RoommatePetsOK:      req.RoommatePetsOK.Ptr(),
		RoommateCookingPref: normalizeEnum(req.RoommateCookingPref, "home", "outside", "no preference"),
		RoommateGuestsOK:    req.RoommateGuestsOK.Ptr(),
		ExtraRequirements:   orNil(req.ExtraRequirements),
	}

	if err := uc.residentRepo.Upsert(ctx, resident); err != nil {
		return 0, err
	}
	return userID, nil
}

// GetRoommate fetches the stored seeker record; reads never create users.
func (uc *PreferenceUseCase) GetRoommate(ctx context.Context, identifier string) (*domain.Roommate, error) {
	userID, err := uc.identity.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return uc.roommateRepo.GetByUserID(ctx, userID)
}

// GetResident fetches the stored lister record.
func (uc *PreferenceUseCase) GetResident(ctx context.Context, identifier string) (*domain.Resident, error) {
	userID, err := uc.identity.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return uc.residentRepo.GetByUserID(ctx, userID)
}

func boolPtr(b bool) *bool { return &b }
