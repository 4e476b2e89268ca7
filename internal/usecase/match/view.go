package match

import (
	"time"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
)

// Counterpart type discriminators carried on every match view so clients can
// render a mixed list without guessing which preference shape they got.
const (
	TypeResident = "resident"
	TypeRoommate = "roommate"
)

// MatchView is one scored candidate as served to a browsing user: the match
// row plus the counterpart's identity and full preference record.
type MatchView struct {
	MatchID            int                `json:"matchId"`
	CompatibilityScore int                `json:"compatibilityScore"`
	Status             domain.MatchStatus `json:"status"`
	MatchedOn          *time.Time         `json:"matchedOn"`
	ProfileID          int                `json:"id"`
	UserID             int                `json:"userId"`
	Name               string             `json:"name"`
	Email              *string            `json:"email"`
	Preferences        interface{}        `json:"preferences"`
	Type               string             `json:"type"`
}

// ResidentPreferences is the lister-side preference payload embedded in a
// roommate's match view.
type ResidentPreferences struct {
	PropertyLocation    *string `json:"propertyLocation"`
	MaxRent             *int    `json:"maxRent"`
	Description         *string `json:"description"`
	ReligiousPref       *string `json:"religiousPref"`
	RoommateFoodPref    *string `json:"roommateFoodPref"`
	Smokes              *bool   `json:"smokes"`
	RoommateSmokesOK    *bool   `json:"roommateSmokesOk"`
	Drinks              *bool   `json:"drinks"`
	RoommateDrinksOK    *bool   `json:"roommateDrinksOk"`
	Cleanliness         *string `json:"cleanliness"`
	RoommateAgePref     *string `json:"roommateAgePref"`
	RoommateGenderPref  *string `json:"roommateGenderPref"`
	EnvironmentPref     *string `json:"environmentPref"`
	CurfewTime          *string `json:"curfewTime"`
	Works               *bool   `json:"works"`
	RoommateNightOK     *bool   `json:"roommateNightOk"`
	Profession          *string `json:"profession"`
	RelationshipStatus  *string `json:"relationshipStatus"`
	RoommatePetsOK      *bool   `json:"roommatePetsOk"`
	RoommateCookingPref *string `json:"roommateCookingPref"`
	RoommateGuestsOK    *bool   `json:"roommateGuestsOk"`
	ExtraRequirements   *string `json:"extraRequirements"`
}

// RoommatePreferences is the seeker-side preference payload embedded in a
// resident's match view.
type RoommatePreferences struct {
	CurrentLocation     *string `json:"currentLocation"`
	CulturalPref        *string `json:"culturalPref"`
	FoodType            *string `json:"foodType"`
	Smokes              *bool   `json:"smokes"`
	Drinks              *bool   `json:"drinks"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
	RoommateSmokesOK    *bool   `json:"roommateSmokesOk"`
	RoommateDrinksOK    *bool   `json:"roommateDrinksOk"`
	RoommateAgePref     *string `json:"roommateAgePref"`
	RoommateGenderPref  *string `json:"roommateGenderPref"`
	EnvironmentPref     *string `json:"environmentPref"`
	CurfewTime          *string `json:"curfewTime"`
	OwnsPets            *bool   `json:"ownsPets"`
	PetDetails          *string `json:"petDetails"`
	Profession          *string `json:"profession"`
	Schedule            *string `json:"schedule"`
	RoommateNightOK     *bool   `json:"roommateNightOk"`
	RelationshipStatus  *string `json:"relationshipStatus"`
	ProfessionPref      *string `json:"professionPref"`
	Cleanliness         *string `json:"cleanliness"`
	CookingPref         *string `json:"cookingPref"`
	ExtraExpectations   *string `json:"extraExpectations"`
}

// ListResult is a match listing plus an optional advisory message (set when
// the requesting user has no profile on the queried side).
type ListResult struct {
	Matches []*MatchView `json:"matches"`
	Message string       `json:"message,omitempty"`
}

// CounterpartView identifies the other party of a mutual match.
type CounterpartView struct {
	ProfileID int     `json:"id"`
	UserID    int     `json:"userId"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Type      string  `json:"type"`
}

// MutualMatchView is one accepted match from the requesting user's side.
type MutualMatchView struct {
	MatchID   int                `json:"matchId"`
	MatchedOn *time.Time         `json:"matchedOn"`
	Status    domain.MatchStatus `json:"status"`
	Other     CounterpartView    `json:"other"`
}

// ActionResult reports the outcome of an accept/reject.
type ActionResult struct {
	Message string `json:"message"`
	IsMatch bool   `json:"isMatch"`
	MatchID int    `json:"matchId"`
}

func residentPreferences(r *domain.Resident) *ResidentPreferences {
	return &ResidentPreferences{
		PropertyLocation:    r.PropertyLocation,
		MaxRent:             r.Rent,
		Description:         r.Description,
		ReligiousPref:       r.ReligiousPref,
		RoommateFoodPref:    r.RoommateFoodPref,
		Smokes:              r.Smokes,
		RoommateSmokesOK:    r.RoommateSmokesOK,
		Drinks:              r.Drinks,
		RoommateDrinksOK:    r.RoommateDrinksOK,
		Cleanliness:         r.Cleanliness,
		RoommateAgePref:     r.RoommateAgePref,
		RoommateGenderPref:  r.RoommateGenderPref,
		EnvironmentPref:     r.EnvironmentPref,
		CurfewTime:          r.CurfewTime,
		Works:               r.Works,
		RoommateNightOK:     r.RoommateNightOK,
		Profession:          r.Profession,
		RelationshipStatus:  r.RelationshipStatus,
		RoommatePetsOK:      r.RoommatePetsOK,
		RoommateCookingPref: r.RoommateCookingPref,
		RoommateGuestsOK:    r.RoommateGuestsOK,
		ExtraRequirements:   r.ExtraRequirements,
	}
}

func roommatePreferences(r *domain.Roommate) *RoommatePreferences {
	return &RoommatePreferences{
		CurrentLocation:     r.CurrentLocation,
		CulturalPref:        r.CulturalPref,
		FoodType:            r.FoodType,
		Smokes:              r.Smokes,
		Drinks:              r.Drinks,
		DietaryRestrictions: r.DietaryRestrictions,
		RoommateSmokesOK:    r.RoommateSmokesOK,
		RoommateDrinksOK:    r.RoommateDrinksOK,
		RoommateAgePref:     r.RoommateAgePref,
		RoommateGenderPref:  r.RoommateGenderPref,
		EnvironmentPref:     r.EnvironmentPref,
		CurfewTime:          r.CurfewTime,
		OwnsPets:            r.OwnsPets,
		PetDetails:          r.PetDetails,
		Profession:          r.Profession,
		Schedule:            r.WorkStudySchedule,
		RoommateNightOK:     r.RoommateNightOK,
		RelationshipStatus:  r.RelationshipStatus,
		ProfessionPref:      r.ProfessionPref,
		Cleanliness:         r.Cleanliness,
		CookingPref:         r.CookingPref,
		ExtraExpectations:   r.ExtraExpectations,
	}
}

func viewFromResidentRow(row *domain.MatchWithResident) *MatchView {
	return &MatchView{
		MatchID:            row.MatchID,
		CompatibilityScore: row.CompatibilityScore,
		Status:             row.Status,
		MatchedOn:          row.MatchedOn,
		ProfileID:          row.Resident.ID,
		UserID:             row.Resident.UserID,
		Name:               row.ResidentName,
		Email:              row.ResidentEmail,
		Preferences:        residentPreferences(&row.Resident),
		Type:               TypeResident,
	}
}

func viewFromRoommateRow(row *domain.MatchWithRoommate) *MatchView {
	return &MatchView{
		MatchID:            row.MatchID,
		CompatibilityScore: row.CompatibilityScore,
		Status:             row.Status,
		MatchedOn:          row.MatchedOn,
		ProfileID:          row.Roommate.ID,
		UserID:             row.Roommate.UserID,
		Name:               row.RoommateName,
		Email:              row.RoommateEmail,
		Preferences:        roommatePreferences(&row.Roommate),
		Type:               TypeRoommate,
	}
}

func mutualView(row *domain.MutualMatch, userID int) *MutualMatchView {
	view := &MutualMatchView{
		MatchID:   row.MatchID,
		MatchedOn: row.MatchedOn,
		Status:    row.Status,
	}
	if row.ResidentUserID == userID {
		view.Other = CounterpartView{
			ProfileID: row.RoommateID,
			UserID:    row.RoommateUserID,
			Name:      row.RoommateName,
			Email:     row.RoommateEmail,
			Type:      TypeRoommate,
		}
	} else {
		view.Other = CounterpartView{
			ProfileID: row.ResidentID,
			UserID:    row.ResidentUserID,
			Name:      row.ResidentName,
			Email:     row.ResidentEmail,
			Type:      TypeResident,
		}
	}
	return view
}
