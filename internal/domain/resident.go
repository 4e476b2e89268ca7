package domain

// Resident is the listing-side profile: one row per user offering a
// property. Tolerance fields describe what the lister accepts in a
// roommate. Nullable preference columns stay pointers so an unset attribute
// is distinguishable from a negative answer.
type Resident struct {
	ID                  int     `json:"id" db:"resident_id"`
	UserID              int     `json:"userId" db:"user_id"`
	PropertyLocation    *string `json:"propertyLocation" db:"property_location"`
	Rent                *int    `json:"maxRent" db:"rent"`
	Description         *string `json:"description" db:"description"`
	ReligiousPref       *string `json:"religiousPref" db:"religious_pref"`
	RoommateFoodPref    *string `json:"roommateFoodPref" db:"roommate_food_pref"`
	Smokes              *bool   `json:"smokes" db:"smokes"`
	RoommateSmokesOK    *bool   `json:"roommateSmokesOk" db:"roommate_smokes_ok"`
	Drinks              *bool   `json:"drinks" db:"drinks"`
	RoommateDrinksOK    *bool   `json:"roommateDrinksOk" db:"roommate_drinks_ok"`
	Cleanliness         *string `json:"cleanliness" db:"cleanliness"`
	RoommateAgePref     *string `json:"roommateAgePref" db:"roommate_age_pref"`
	RoommateGenderPref  *string `json:"roommateGenderPref" db:"roommate_gender_pref"`
	EnvironmentPref     *string `json:"environmentPref" db:"environment_pref"`
	CurfewTime          *string `json:"curfewTime" db:"curfew_time"`
	Works               *bool   `json:"works" db:"works"`
	RoommateNightOK     *bool   `json:"roommateNightOk" db:"roommate_night_ok"`
	Profession          *string `json:"profession" db:"profession"`
	RelationshipStatus  *string `json:"relationshipStatus" db:"relationship_status"`
	RoommatePetsOK      *bool   `json:"roommatePetsOk" db:"roommate_pets_ok"`
	RoommateCookingPref *string `json:"roommateCookingPref" db:"roommate_cooking_pref"`
	RoommateGuestsOK    *bool   `json:"roommateGuestsOk" db:"roommate_guests_ok"`
	ExtraRequirements   *string `json:"extraRequirements" db:"extra_requirements"`
}
