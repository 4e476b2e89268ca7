package match

import (
	"testing"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func bPtr(b bool) *bool       { return &b }

func TestScore_EmptyProfiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Score(nil, nil))
	assert.Equal(t, 0, Score(&domain.Resident{}, nil))
	assert.Equal(t, 0, Score(nil, &domain.Roommate{}))
	// All attributes unset: no rule can pass.
	assert.Equal(t, 0, Score(&domain.Resident{}, &domain.Roommate{}))
}

func TestScore_PerfectMatch(t *testing.T) {
	t.Parallel()

	resident := &domain.Resident{
		PropertyLocation:   strPtr("Pune"),
		RoommateFoodPref:   strPtr("vegetarian"),
		RoommateSmokesOK:   bPtr(true),
		RoommateDrinksOK:   bPtr(true),
		Cleanliness:        strPtr("neat"),
		RoommateGenderPref: strPtr("female"),
		RoommatePetsOK:     bPtr(true),
		Profession:         strPtr("engineer"),
		EnvironmentPref:    strPtr("quiet"),
	}
	roommate := &domain.Roommate{
		CurrentLocation:    strPtr("Pune"),
		FoodType:           strPtr("vegetarian"),
		Smokes:             bPtr(true),
		Drinks:             bPtr(true),
		Cleanliness:        strPtr("neat"),
		RoommateGenderPref: strPtr("female"),
		OwnsPets:           bPtr(true),
		Profession:         strPtr("engineer"),
		EnvironmentPref:    strPtr("quiet"),
	}

	assert.Equal(t, 100, Score(resident, roommate))
}

func TestScore_LocationIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	resident := &domain.Resident{PropertyLocation: strPtr("PUNE")}
	roommate := &domain.Roommate{CurrentLocation: strPtr("pune")}

	assert.Equal(t, 20, Score(resident, roommate))
}

func TestScore_ToleranceRules(t *testing.T) {
	t.Parallel()

	// Non-smoker earns the smoking points even when the resident objects.
	resident := &domain.Resident{RoommateSmokesOK: bPtr(false)}
	roommate := &domain.Roommate{Smokes: bPtr(false)}
	assert.Equal(t, 10, Score(resident, roommate))

	// A smoker with a tolerant resident also earns them.
	resident = &domain.Resident{RoommateSmokesOK: bPtr(true)}
	roommate = &domain.Roommate{Smokes: bPtr(true)}
	assert.Equal(t, 10, Score(resident, roommate))

	// Unknown habit with an intolerant resident does not.
	resident = &domain.Resident{RoommateSmokesOK: bPtr(false)}
	roommate = &domain.Roommate{}
	assert.Equal(t, 0, Score(resident, roommate))
}

func TestScore_FlexibleProfessionPreference(t *testing.T) {
	t.Parallel()

	resident := &domain.Resident{Profession: strPtr("doctor")}
	roommate := &domain.Roommate{
		Profession:     strPtr("student"),
		ProfessionPref: strPtr("flexible"),
	}

	assert.Equal(t, 10, Score(resident, roommate))
}

func TestScore_PartialOverlap(t *testing.T) {
	t.Parallel()

	// Shared city, diet, habits and cleanliness but nothing else known.
	resident := &domain.Resident{
		PropertyLocation: strPtr("Pune"),
		RoommateFoodPref: strPtr("vegetarian"),
		Cleanliness:      strPtr("moderate"),
	}
	roommate := &domain.Roommate{
		CurrentLocation: strPtr("pune"),
		FoodType:        strPtr("vegetarian"),
		Smokes:          bPtr(false),
		Drinks:          bPtr(false),
		Cleanliness:     strPtr("moderate"),
	}

	assert.Equal(t, 65, Score(resident, roommate))
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	resident := &domain.Resident{
		PropertyLocation: strPtr("Mumbai"),
		RoommateFoodPref: strPtr("vegan"),
		Cleanliness:      strPtr("moderate"),
	}
	roommate := &domain.Roommate{
		CurrentLocation: strPtr("Mumbai"),
		FoodType:        strPtr("vegan"),
		Cleanliness:     strPtr("moderate"),
	}

	first := Score(resident, roommate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(resident, roommate))
	}
	assert.Equal(t, 45, first)
}

func TestScore_AlwaysWithinRange(t *testing.T) {
	t.Parallel()

	profiles := []*domain.Roommate{
		{},
		{Smokes: bPtr(false), Drinks: bPtr(false), OwnsPets: bPtr(false)},
		{CurrentLocation: strPtr("Delhi"), FoodType: strPtr("other")},
	}
	resident := &domain.Resident{
		PropertyLocation: strPtr("Delhi"),
		RoommateSmokesOK: bPtr(true),
		RoommateDrinksOK: bPtr(true),
		RoommatePetsOK:   bPtr(true),
	}

	for _, roommate := range profiles {
		score := Score(resident, roommate)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
