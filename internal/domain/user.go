package domain

import "time"

// User is the canonical identity row. Email and FirebaseUID are optional
// per-deployment identity columns; Password only ever holds a bcrypt hash of
// a synthesized placeholder credential (real auth lives with the external
// identity provider).
type User struct {
	ID          int       `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Email       *string   `json:"email" db:"email"`
	FirebaseUID *string   `json:"firebase_uid,omitempty" db:"firebase_uid"`
	Password    *string   `json:"-" db:"password"`
	AadharNo    *string   `json:"aadhar_no,omitempty" db:"aadhar_no"`
	UserType    *string   `json:"user_type" db:"user_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
