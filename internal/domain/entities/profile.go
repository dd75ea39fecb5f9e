package entities

import "time"

// Profile mirrors identity-provider user data for joins and display. The id
// is always the identity provider's user id, never generated locally.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
