package match

import (
	"strings"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

// Rule weights. The sum of all weights is 100, so a score is always in
// [0, 100] and directly readable as a percentage.
const (
	weightLocation    = 20
	weightFood        = 15
	weightSmoking     = 10
	weightDrinking    = 10
	weightCleanliness = 10
	weightGender      = 10
	weightPets        = 10
	weightProfession  = 10
	weightEnvironment = 5
)

// Score computes the compatibility of one resident/roommate pair. It is a
// pure, total function: any attribute that is unset on either side simply
// fails its rule, it never errors. Identical inputs always produce the
// identical score regardless of which side initiated the comparison.
func Score(resident *domain.Resident, roommate *domain.Roommate) int {
	if resident == nil || roommate == nil {
		return 0
	}

	score := 0

	if eqFold(resident.PropertyLocation, roommate.CurrentLocation) {
		score += weightLocation
	}
	if eq(resident.RoommateFoodPref, roommate.FoodType) {
		score += weightFood
	}
	// Tolerance rules pass when the resident accepts the habit or the
	// roommate affirmatively lacks it. An unset habit earns no credit.
	if isTrue(resident.RoommateSmokesOK) || isFalse(roommate.Smokes) {
		score += weightSmoking
	}
	if isTrue(resident.RoommateDrinksOK) || isFalse(roommate.Drinks) {
		score += weightDrinking
	}
	if eq(resident.Cleanliness, roommate.Cleanliness) {
		score += weightCleanliness
	}
	if eq(resident.RoommateGenderPref, roommate.RoommateGenderPref) {
		score += weightGender
	}
	if isTrue(resident.RoommatePetsOK) || isFalse(roommate.OwnsPets) {
		score += weightPets
	}
	if eq(resident.Profession, roommate.Profession) || is(roommate.ProfessionPref, "flexible") {
		score += weightProfession
	}
	if eq(resident.EnvironmentPref, roommate.EnvironmentPref) {
		score += weightEnvironment
	}

	return score
}

func eq(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func eqFold(a, b *string) bool {
	return a != nil && b != nil && strings.EqualFold(*a, *b)
}

func is(a *string, v string) bool {
	return a != nil && *a == v
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}
