package domain

import "time"

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Terminal reports whether no further transitions are allowed.
func (s MatchStatus) Terminal() bool {
	return s == MatchAccepted || s == MatchRejected
}

type MatchAction string

const (
	ActionAccept MatchAction = "accept"
	ActionReject MatchAction = "reject"
)

func (a MatchAction) Valid() bool {
	return a == ActionAccept || a == ActionReject
}

// Match is a scored candidate pairing between one resident and one roommate
// profile. At most one row exists per (resident_id, roommate_id); the
// database enforces it with a unique constraint.
type Match struct {
	ID                 int         `json:"match_id" db:"match_id"`
	ResidentID         int         `json:"resident_id" db:"resident_id"`
	RoommateID         int         `json:"roommate_id" db:"roommate_id"`
	CompatibilityScore int         `json:"compatibility_score" db:"compatibility_score"`
	Status             MatchStatus `json:"status" db:"status"`
	MatchedOn          *time.Time  `json:"matched_on" db:"matched_on"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
}

// MatchParticipants carries a match together with the owning user ids of
// both sides, resolved through the profile tables. Either side may be nil if
// its profile row has been removed out-of-band (joins are LEFT).
type MatchParticipants struct {
	MatchID        int         `db:"match_id"`
	ResidentID     int         `db:"resident_id"`
	RoommateID     int         `db:"roommate_id"`
	Status         MatchStatus `db:"status"`
	ResidentUserID *int        `db:"resident_user_id"`
	RoommateUserID *int        `db:"roommate_user_id"`
}

// HasParticipant reports whether userID owns either side of the match.
func (p *MatchParticipants) HasParticipant(userID int) bool {
	if p.ResidentUserID != nil && *p.ResidentUserID == userID {
		return true
	}
	if p.RoommateUserID != nil && *p.RoommateUserID == userID {
		return true
	}
	return false
}

// MatchWithResident is a pending-match row joined with the resident side,
// as served to a roommate browsing listings. Resident is embedded so sqlx
// flattens its columns straight off the join.
type MatchWithResident struct {
	MatchID            int         `db:"match_id"`
	CompatibilityScore int         `db:"compatibility_score"`
	Status             MatchStatus `db:"status"`
	MatchedOn          *time.Time  `db:"matched_on"`
	Resident
	ResidentName  string  `db:"resident_name"`
	ResidentEmail *string `db:"resident_email"`
}

// MatchWithRoommate is the mirror row served to a resident.
type MatchWithRoommate struct {
	MatchID            int         `db:"match_id"`
	CompatibilityScore int         `db:"compatibility_score"`
	Status             MatchStatus `db:"status"`
	MatchedOn          *time.Time  `db:"matched_on"`
	Roommate
	RoommateName  string  `db:"roommate_name"`
	RoommateEmail *string `db:"roommate_email"`
}

// MutualMatch is an accepted match with both sides' identity info.
type MutualMatch struct {
	MatchID        int         `db:"match_id"`
	MatchedOn      *time.Time  `db:"matched_on"`
	Status         MatchStatus `db:"status"`
	ResidentID     int         `db:"resident_id"`
	ResidentUserID int         `db:"resident_user_id"`
	ResidentName   string      `db:"resident_name"`
	ResidentEmail  *string     `db:"resident_email"`
	RoommateID     int         `db:"roommate_id"`
	RoommateUserID int         `db:"roommate_user_id"`
	RoommateName   string      `db:"roommate_name"`
	RoommateEmail  *string     `db:"roommate_email"`
}

// MatchSummary is the flat admin/debug listing row.
type MatchSummary struct {
	MatchID            int         `json:"match_id" db:"match_id"`
	CompatibilityScore int         `json:"compatibility_score" db:"compatibility_score"`
	Status             MatchStatus `json:"status" db:"status"`
	MatchedOn          *time.Time  `json:"matched_on" db:"matched_on"`
	ResidentID         int         `json:"resident_id" db:"resident_id"`
	RoommateID         int         `json:"roommate_id" db:"roommate_id"`
	ResidentName       string      `json:"resident_name" db:"resident_name"`
	RoommateName       string      `json:"roommate_name" db:"roommate_name"`
}
