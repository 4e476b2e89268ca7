package preference

import (
	"encoding/json"
	"strings"
)

// FlexibleBool accepts either a JSON boolean or the survey-style strings
// "Yes"/"No" that older clients still send. Anything unrecognized decodes to
// false rather than failing the whole payload.
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = FlexibleBool(t)
	case string:
		*b = FlexibleBool(t == "Yes")
	default:
		*b = false
	}
	return nil
}

func (b FlexibleBool) Ptr() *bool {
	v := bool(b)
	return &v
}

// RoommatePreferencesRequest is the seeker-side survey payload. Field names
// follow the client form, not the storage columns.
type RoommatePreferencesRequest struct {
	CurrentLocation                  *string      `json:"currentLocation" validate:"omitempty,max=255"`
	ReligiousPreferences             *string      `json:"religiousPreferences" validate:"omitempty,max=255"`
	DietaryPreference                *string      `json:"dietaryPreference" validate:"omitempty,max=50"`
	Smokes                           FlexibleBool `json:"smokes"`
	Drinks                           FlexibleBool `json:"drinks"`
	DietaryRestrictions              *string      `json:"dietaryRestrictions" validate:"omitempty,max=500"`
	ComfortableWithSmokingOrDrinking FlexibleBool `json:"comfortableWithSmokingOrDrinking"`
	AgeGroupPreference               *string      `json:"ageGroupPreference" validate:"omitempty,max=50"`
	GenderPreference                 *string      `json:"genderPreference" validate:"omitempty,max=50"`
	EnvironmentPreference            *string      `json:"environmentPreference" validate:"omitempty,max=50"`
	CurfewTimings                    *string      `json:"curfewTimings" validate:"omitempty,max=100"`
	Pets                             *string      `json:"pets" validate:"omitempty,max=500"`
	Profession                       *string      `json:"profession" validate:"omitempty,max=255"`
	Schedule                         *string      `json:"schedule" validate:"omitempty,max=50"`
	OkayWithIrregularSchedule        FlexibleBool `json:"okayWithIrregularSchedule"`
	RelationshipStatus               *string      `json:"relationshipStatus" validate:"omitempty,max=50"`
	BackgroundPreference             *string      `json:"backgroundPreference" validate:"omitempty,max=50"`
	CleanlinessHabits                *string      `json:"cleanlinessHabits" validate:"omitempty,max=50"`
	CookingPreference                *string      `json:"cookingPreference" validate:"omitempty,max=50"`
	ExtraExpectations                *string      `json:"extraExpectations" validate:"omitempty,max=2000"`
}

// ResidentPreferencesRequest is the lister-side survey payload.
type ResidentPreferencesRequest struct {
	PropertyLocation    *string      `json:"propertyLocation" validate:"omitempty,max=255"`
	Rent                *int         `json:"rent" validate:"omitempty,min=0"`
	Description         *string      `json:"description" validate:"omitempty,max=2000"`
	ReligiousPref       *string      `json:"religiousPref" validate:"omitempty,max=255"`
	RoommateFoodPref    *string      `json:"roommateFoodPref" validate:"omitempty,max=50"`
	Smokes              FlexibleBool `json:"smokes"`
	RoommateSmokesOK    FlexibleBool `json:"roommateSmokesOk"`
	Drinks              FlexibleBool `json:"drinks"`
	RoommateDrinksOK    FlexibleBool `json:"roommateDrinksOk"`
	Cleanliness         *string      `json:"cleanliness" validate:"omitempty,max=50"`
	RoommateAgePref     *string      `json:"roommateAgePref" validate:"omitempty,max=50"`
	RoommateGenderPref  *string      `json:"roommateGenderPref" validate:"omitempty,max=50"`
	EnvironmentPref     *string      `json:"environmentPref" validate:"omitempty,max=50"`
	CurfewTime          *string      `json:"curfewTime" validate:"omitempty,max=100"`
	Works               *bool        `json:"works"`
	RoommateNightOK     FlexibleBool `json:"roommateNightOk"`
	Profession          *string      `json:"profession" validate:"omitempty,max=255"`
	RelationshipStatus  *string      `json:"relationshipStatus" validate:"omitempty,max=50"`
	RoommatePetsOK      FlexibleBool `json:"roommatePetsOk"`
	RoommateCookingPref *string      `json:"roommateCookingPref" validate:"omitempty,max=50"`
	RoommateGuestsOK    FlexibleBool `json:"roommateGuestsOk"`
	ExtraRequirements   *string      `json:"extraRequirements" validate:"omitempty,max=2000"`
}

// normalizeEnum lowercases and matches against a closed vocabulary; an
// off-vocabulary value stores as unset rather than polluting the column.
func normalizeEnum(val *string, allowed ...string) *string {
	if val == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*val))
	for _, a := range allowed {
		if s == a {
			v := a
			return &v
		}
	}
	return nil
}

// orNil collapses empty free text to unset.
func orNil(val *string) *string {
	if val == nil || *val == "" {
		return nil
	}
	return val
}
