package domain

// Roommate is the seeking-side profile: the user's own habits plus what they
// accept in a lister. The field set deliberately parallels Resident without
// matching it one-to-one.
type Roommate struct {
	ID                  int     `json:"id" db:"roommate_id"`
	UserID              int     `json:"userId" db:"user_id"`
	CurrentLocation     *string `json:"currentLocation" db:"current_location"`
	CulturalPref        *string `json:"culturalPref" db:"cultural_pref"`
	FoodType            *string `json:"foodType" db:"food_type"`
	Smokes              *bool   `json:"smokes" db:"smokes"`
	Drinks              *bool   `json:"drinks" db:"drinks"`
	DietaryRestrictions *string `json:"dietaryRestrictions" db:"dietary_restrictions"`
	RoommateSmokesOK    *bool   `json:"roommateSmokesOk" db:"roommate_smokes_ok"`
	RoommateDrinksOK    *bool   `json:"roommateDrinksOk" db:"roommate_drinks_ok"`
	RoommateAgePref     *string `json:"roommateAgePref" db:"roommate_age_pref"`
	RoommateGenderPref  *string `json:"roommateGenderPref" db:"roommate_gender_pref"`
	EnvironmentPref     *string `json:"environmentPref" db:"environment_pref"`
	CurfewTime          *string `json:"curfewTime" db:"curfew_time"`
	OwnsPets            *bool   `json:"ownsPets" db:"owns_pets"`
	PetDetails          *string `json:"petDetails" db:"pet_details"`
	Profession          *string `json:"profession" db:"profession"`
	WorkStudySchedule   *string `json:"schedule" db:"work_study_schedule"`
	RoommateNightOK     *bool   `json:"roommateNightOk" db:"roommate_night_ok"`
	RelationshipStatus  *string `json:"relationshipStatus" db:"relationship_status"`
	ProfessionPref      *string `json:"professionPref" db:"profession_pref"`
	Cleanliness         *string `json:"cleanliness" db:"cleanliness"`
	CookingPref         *string `json:"cookingPref" db:"cooking_pref"`
	ExtraExpectations   *string `json:"extraExpectations" db:"extra_expectations"`
}
